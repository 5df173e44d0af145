package mock

import (
	"context"
	"photo-album/internal"
	cl "photo-album/pkg/catelog"
)

var _ internal.AlbumStore = (*AlbumStore)(nil)

// AlbumStore defines an interface responsible for Album CRUD.
type AlbumStore struct {
	ListAlbumsFn   func(ctx context.Context, req cl.ListAlbumsReq) ([]cl.Album, error)
	GetAlbumFn     func(ctx context.Context, id string) (cl.Album, error)
	CreateAlbumFn  func(ctx context.Context, req cl.CreateAlbumRequest) (cl.Album, error)
	RenameAlbumFn  func(ctx context.Context, req cl.RenameAlbumRequest) (cl.Album, error)
	DeleteAlbumFn  func(ctx context.Context, id string) error
	GetAncestorsFn func(ctx context.Context, id string) []cl.Album
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *AlbumStore) ListAlbums(ctx context.Context, req cl.ListAlbumsReq) ([]cl.Album, error) {
	return s.ListAlbumsFn(ctx, req)
}

// GetAlbum proxies the request to the GetAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) GetAlbum(ctx context.Context, id string) (cl.Album, error) {
	return s.GetAlbumFn(ctx, id)
}

// CreateAlbum proxies the request to the CreateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (cl.Album, error) {
	return s.CreateAlbumFn(ctx, req)
}

// RenameAlbum proxies the request to the RenameAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) RenameAlbum(ctx context.Context, req cl.RenameAlbumRequest) (cl.Album, error) {
	return s.RenameAlbumFn(ctx, req)
}

// DeleteAlbum proxies the request to the DeleteAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) DeleteAlbum(ctx context.Context, id string) error {
	return s.DeleteAlbumFn(ctx, id)
}

// GetAncestors proxies the request to the GetAncestorsFn that's injected when
// the mock store is created.
func (s *AlbumStore) GetAncestors(ctx context.Context, id string) []cl.Album {
	return s.GetAncestorsFn(ctx, id)
}
