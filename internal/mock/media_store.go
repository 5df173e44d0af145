package mock

import (
	"context"
	"photo-album/internal"
	cl "photo-album/pkg/catelog"
)

var _ internal.MediaStore = (*MediaStore)(nil)

// MediaStore defines an interface responsible for Media CRUD.
type MediaStore struct {
	ListMediaFn   func(ctx context.Context, req cl.ListMediaReq) ([]cl.Media, error)
	GetMediaFn    func(ctx context.Context, id string) (cl.Media, error)
	AddMediaFn    func(ctx context.Context, req cl.AddMediaRequest) (cl.Media, error)
	UpdateMediaFn func(ctx context.Context, req cl.UpdateMediaRequest) (cl.Media, error)
	DeleteMediaFn func(ctx context.Context, id string) error
}

// ListMedia calls the MediaStore's ListMediaFn.
func (s *MediaStore) ListMedia(ctx context.Context, req cl.ListMediaReq) ([]cl.Media, error) {
	return s.ListMediaFn(ctx, req)
}

// GetMedia calls the MediaStore's GetMediaFn.
func (s *MediaStore) GetMedia(ctx context.Context, id string) (cl.Media, error) {
	return s.GetMediaFn(ctx, id)
}

// AddMedia calls the MediaStore's AddMediaFn.
func (s *MediaStore) AddMedia(ctx context.Context, req cl.AddMediaRequest) (cl.Media, error) {
	return s.AddMediaFn(ctx, req)
}

// UpdateMedia calls the MediaStore's UpdateMediaFn.
func (s *MediaStore) UpdateMedia(ctx context.Context, req cl.UpdateMediaRequest) (cl.Media, error) {
	return s.UpdateMediaFn(ctx, req)
}

// DeleteMedia calls the MediaStore's DeleteMediaFn.
func (s *MediaStore) DeleteMedia(ctx context.Context, id string) error {
	return s.DeleteMediaFn(ctx, id)
}
