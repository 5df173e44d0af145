package client

import (
	"context"
	"io"
	"path/filepath"
	"photo-album/internal/hosting"
	cl "photo-album/pkg/catelog"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Uploader sends a file to the hosting provider.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error)
}

// File is one entry of an upload batch.
type File struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
	Title       string
	Description string
}

// Kind returns the media type recorded for the file.
func (f File) Kind() string {
	if strings.HasPrefix(f.ContentType, "video") {
		return cl.MediaTypeVideo
	}
	return cl.MediaTypeImage
}

// DefaultTitle is the file name without directory or extension.
func (f File) DefaultTitle() string {
	base := filepath.Base(f.Name)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

// ItemError is the failure of one file in a batch.
type ItemError struct {
	Name string
	Err  error
}

// BatchResult summarizes an upload batch.
type BatchResult struct {
	Succeeded int
	Failed    int
	Media     []cl.Media
	Errors    []ItemError
}

// TotalFailure reports whether no file of a non-empty batch was stored.
func (r BatchResult) TotalFailure() bool {
	return r.Succeeded == 0 && r.Failed > 0
}

// errNoDeliveryURL marks an upload the provider accepted without returning a
// URL for it.
type errNoDeliveryURL struct{}

func (errNoDeliveryURL) Error() string { return "hosting response has no delivery url" }

// Batch uploads files one at a time and records each as media.
type Batch struct {
	Host Uploader
	API  *Client

	// Progress, if set, is called with the completed percentage after every
	// file, whether it succeeded or not.
	Progress func(percent int)
}

// Run uploads files into albumID ("" or "root" for no album). A failing file
// is counted and skipped; the rest of the batch still runs.
func (b *Batch) Run(ctx context.Context, albumID string, files []File) BatchResult {
	var res BatchResult
	target := cl.NormalizeAlbumID(nullString(albumID))

	for i, f := range files {
		m, err := b.uploadOne(ctx, target, f)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, ItemError{Name: f.Name, Err: err})
		} else {
			res.Succeeded++
			res.Media = append(res.Media, m)
		}
		if b.Progress != nil {
			b.Progress((i + 1) * 100 / len(files))
		}
	}
	return res
}

func (b *Batch) uploadOne(ctx context.Context, albumID null.String, f File) (cl.Media, error) {
	rc, err := f.Open()
	if err != nil {
		return cl.Media{}, err
	}
	defer rc.Close()

	up, err := b.Host.Upload(ctx, filepath.Base(f.Name), rc)
	if err != nil {
		return cl.Media{}, err
	}
	deliveryURL := up.DeliveryURL()
	if deliveryURL == "" {
		return cl.Media{}, errNoDeliveryURL{}
	}

	title := f.Title
	if title == "" {
		title = f.DefaultTitle()
	}
	return b.API.AddMedia(ctx, cl.AddMediaRequest{
		AlbumID:     albumID,
		Type:        f.Kind(),
		URL:         deliveryURL,
		AssetID:     null.NewString(up.PublicID, up.PublicID != ""),
		Title:       null.StringFrom(title),
		Description: null.StringFrom(f.Description),
	})
}
