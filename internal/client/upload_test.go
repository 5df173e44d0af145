package client

import (
	"context"
	"io"
	"io/ioutil"
	"photo-album/internal/hosting"
	cl "photo-album/pkg/catelog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

type uploaderFunc func(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error)

func (f uploaderFunc) Upload(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error) {
	return f(ctx, filename, r)
}

func testFile(name, contentType string) File {
	return File{
		Name:        name,
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return ioutil.NopCloser(strings.NewReader("data")), nil
		},
	}
}

func TestBatchRunPartialFailure(t *testing.T) {
	ctx := context.Background()
	store, c := newTestService(t)

	host := uploaderFunc(func(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error) {
		switch filename {
		case "b.png":
			return hosting.UploadRes{}, nil
		case "c.mp4":
			return hosting.UploadRes{SecureURL: "https://res.test/demo/video/upload/v1/c.mp4", PublicID: "c", ResourceType: "video"}, nil
		}
		return hosting.UploadRes{SecureURL: "https://res.test/demo/image/upload/v1/" + filename, PublicID: "a"}, nil
	})

	var progress []int
	b := Batch{Host: host, API: c, Progress: func(p int) { progress = append(progress, p) }}
	res := b.Run(ctx, "", []File{
		testFile("photos/a.jpg", "image/jpeg"),
		testFile("b.png", "image/png"),
		testFile("c.mp4", "video/mp4"),
	})

	if res.Succeeded != 2 || res.Failed != 1 {
		t.Fatalf("expected 2 succeeded and 1 failed, got %d and %d", res.Succeeded, res.Failed)
	}
	if res.TotalFailure() {
		t.Fatal("expected a partial failure")
	}
	if len(res.Errors) != 1 || res.Errors[0].Name != "b.png" {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	if _, ok := res.Errors[0].Err.(errNoDeliveryURL); !ok {
		t.Fatalf("unexpected error type: %T", res.Errors[0].Err)
	}
	if diff := cmp.Diff([]int{33, 66, 100}, progress); diff != "" {
		t.Fatalf("unexpected progress: %s", diff)
	}
	if len(store.media) != 2 {
		t.Fatalf("expected 2 stored media, got %d", len(store.media))
	}

	titles := map[string]string{}
	for _, m := range res.Media {
		if m.AlbumID.Valid {
			t.Fatalf("expected no album, got %q", m.AlbumID.String)
		}
		titles[m.Title.String] = m.Type
	}
	if diff := cmp.Diff(map[string]string{"a": cl.MediaTypeImage, "c": cl.MediaTypeVideo}, titles); diff != "" {
		t.Fatalf("unexpected media: %s", diff)
	}
}

func TestBatchRunTotalFailure(t *testing.T) {
	host := uploaderFunc(func(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error) {
		return hosting.UploadRes{}, errors.New("upload preset not found")
	})
	b := Batch{Host: host, API: New("http://album.test", nil)}
	res := b.Run(context.Background(), "a1", []File{testFile("a.jpg", "image/jpeg")})
	if !res.TotalFailure() {
		t.Fatalf("expected a total failure, got %+v", res)
	}
}

func TestFileDefaults(t *testing.T) {
	table := []struct {
		label    string
		file     File
		expKind  string
		expTitle string
	}{
		{label: "image", file: File{Name: "dir/sunset.beach.jpg", ContentType: "image/jpeg"}, expKind: cl.MediaTypeImage, expTitle: "sunset"},
		{label: "video", file: File{Name: "clip.mp4", ContentType: "video/mp4"}, expKind: cl.MediaTypeVideo, expTitle: "clip"},
		{label: "unknown content type", file: File{Name: "raw"}, expKind: cl.MediaTypeImage, expTitle: "raw"},
		{label: "dotfile", file: File{Name: ".hidden"}, expKind: cl.MediaTypeImage, expTitle: ".hidden"},
	}

	for _, ts := range table {
		t.Run(ts.label, func(t *testing.T) {
			if k := ts.file.Kind(); k != ts.expKind {
				t.Fatalf("expected kind %q, got %q", ts.expKind, k)
			}
			if title := ts.file.DefaultTitle(); title != ts.expTitle {
				t.Fatalf("expected title %q, got %q", ts.expTitle, title)
			}
		})
	}
}
