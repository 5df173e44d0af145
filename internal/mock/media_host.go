package mock

import (
	"context"
	"io"
	"photo-album/internal"
	"photo-album/internal/hosting"
)

var _ internal.MediaHost = (*MediaHost)(nil)

// MediaHost mocks the hosting provider.
type MediaHost struct {
	UploadFn  func(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error)
	DestroyFn func(ctx context.Context, assetID, resourceType string) error
	SignFn    func(params map[string]interface{}) (string, error)
}

// Upload calls the MediaHost's UploadFn.
func (h *MediaHost) Upload(ctx context.Context, filename string, r io.Reader) (hosting.UploadRes, error) {
	return h.UploadFn(ctx, filename, r)
}

// Destroy calls the MediaHost's DestroyFn.
func (h *MediaHost) Destroy(ctx context.Context, assetID, resourceType string) error {
	return h.DestroyFn(ctx, assetID, resourceType)
}

// Sign calls the MediaHost's SignFn.
func (h *MediaHost) Sign(params map[string]interface{}) (string, error) {
	return h.SignFn(params)
}
