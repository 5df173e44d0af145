// Package client drives the album service over HTTP. It holds the state a
// single browsing session needs: where the user is, what was fetched and the
// upload batch in progress.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	cl "photo-album/pkg/catelog"
	"strings"

	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/json"
)

// APIError is an error response returned by the album service.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("album service: %d %s", e.StatusCode, e.Message)
}

// Client calls the album service HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the service at baseURL. A nil httpClient uses the
// default client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httputils.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// ListAlbums lists the children of parentID; "" lists the top level and
// cl.AllAlbums every album.
func (c *Client) ListAlbums(ctx context.Context, parentID string) ([]cl.Album, error) {
	var res []cl.Album
	q := url.Values{"parentId": {parentID}}
	err := c.do(ctx, http.MethodGet, "/albums", q, nil, &res)
	return res, err
}

// Ancestors returns the breadcrumb trail from the top level down to id.
func (c *Client) Ancestors(ctx context.Context, id string) ([]cl.Album, error) {
	var res []cl.Album
	err := c.do(ctx, http.MethodGet, "/albums/ancestors", url.Values{"id": {id}}, nil, &res)
	return res, err
}

// CreateAlbum creates an album under parentID, or at the top level when
// parentID is "".
func (c *Client) CreateAlbum(ctx context.Context, name, parentID string) (cl.Album, error) {
	var res cl.Album
	if err := ValidateName(name); err != nil {
		return res, err
	}
	req := cl.CreateAlbumRequest{Name: name, ParentID: cl.NormalizeAlbumID(nullString(parentID))}
	err := c.do(ctx, http.MethodPost, "/albums", nil, req, &res)
	return res, err
}

// RenameAlbum renames an album. Empty names are rejected without calling the
// service.
func (c *Client) RenameAlbum(ctx context.Context, id, name string) (cl.Album, error) {
	var res cl.Album
	if err := ValidateName(name); err != nil {
		return res, err
	}
	req := cl.RenameAlbumRequest{ID: id, Name: name}
	err := c.do(ctx, http.MethodPut, "/albums", nil, req, &res)
	return res, err
}

// DeleteAlbum deletes an empty album.
func (c *Client) DeleteAlbum(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/albums", url.Values{"id": {id}}, nil, &cl.DeleteRes{})
}

// ListMedia lists media in albumID, or everywhere when albumID is "",
// filtered by search.
func (c *Client) ListMedia(ctx context.Context, albumID, search string) ([]cl.Media, error) {
	var res []cl.Media
	q := url.Values{"albumId": {albumID}, "searchQuery": {search}}
	err := c.do(ctx, http.MethodGet, "/media", q, nil, &res)
	return res, err
}

// GetMedia fetches a single media item.
func (c *Client) GetMedia(ctx context.Context, id string) (cl.Media, error) {
	var res cl.Media
	err := c.do(ctx, http.MethodGet, "/media/"+url.PathEscape(id), nil, nil, &res)
	return res, err
}

// AddMedia records an uploaded asset.
func (c *Client) AddMedia(ctx context.Context, req cl.AddMediaRequest) (cl.Media, error) {
	var res cl.Media
	err := c.do(ctx, http.MethodPost, "/media", nil, req, &res)
	return res, err
}

// UpdateMedia edits the title and, when set, the description of a media item.
func (c *Client) UpdateMedia(ctx context.Context, req cl.UpdateMediaRequest) (cl.Media, error) {
	var res cl.Media
	err := c.do(ctx, http.MethodPut, "/media", nil, req, &res)
	return res, err
}

// DeleteMedia deletes a media item and its hosted asset.
func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/media", url.Values{"id": {id}}, nil, &cl.DeleteRes{})
}

// SignUpload asks the service to sign direct upload parameters.
func (c *Client) SignUpload(ctx context.Context, params map[string]interface{}) (string, error) {
	var res cl.SignUploadRes
	err := c.do(ctx, http.MethodPost, "/sign-upload", nil, cl.SignUploadRequest{ParamsToSign: params}, &res)
	return res.Signature, err
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, v interface{}) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rd io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.Encode(&buf, body, ""); err != nil {
			return errors.Wrap(err, "encode request body")
		}
		rd = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var res httputils.JSONErrRes
		if err := json.Decode(resp.Body, &res); err == nil && res.Error.Message != "" {
			apiErr.Type = res.Error.Type
			apiErr.Message = res.Error.Message
		}
		return apiErr
	}
	return errors.Wrapf(json.Decode(resp.Body, v), "decode %s %s", method, path)
}

// ValidateName rejects album names that are empty once trimmed.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return cl.ErrMissingName
	}
	return nil
}
