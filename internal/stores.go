package internal

import (
	"context"
	"io"

	"photo-album/internal/hosting"
	cl "photo-album/pkg/catelog"
)

type AlbumStore interface {
	ListAlbums(ctx context.Context, req cl.ListAlbumsReq) ([]cl.Album, error)
	GetAlbum(ctx context.Context, id string) (cl.Album, error)
	CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (cl.Album, error)
	RenameAlbum(ctx context.Context, req cl.RenameAlbumRequest) (cl.Album, error)
	DeleteAlbum(ctx context.Context, id string) error
	GetAncestors(ctx context.Context, id string) []cl.Album
}

type MediaStore interface {
	ListMedia(ctx context.Context, req cl.ListMediaReq) ([]cl.Media, error)
	GetMedia(ctx context.Context, id string) (cl.Media, error)
	AddMedia(ctx context.Context, req cl.AddMediaRequest) (cl.Media, error)
	UpdateMedia(ctx context.Context, req cl.UpdateMediaRequest) (cl.Media, error)
	DeleteMedia(ctx context.Context, id string) error
}

// MediaHost is the remote service holding the uploaded binaries.
type MediaHost interface {
	Upload(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error)
	Destroy(ctx context.Context, assetID, resourceType string) error
	Sign(params map[string]interface{}) (string, error)
}
