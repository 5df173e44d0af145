// Package hosting talks to the media hosting provider: it uploads binaries,
// destroys stored assets and signs client upload parameters. The provider is
// Cloudinary, reached through its Go SDK.
package hosting

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
)

// DefaultBaseURL is the provider's upload API prefix.
const DefaultBaseURL = "https://api.cloudinary.com"

// MetricRequests counts provider calls by operation and outcome.
const MetricRequests = "hosting_requests_total"

// Config holds the provider account settings.
type Config struct {
	BaseURL      string
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// Client is a Media Hosting Gateway backed by the provider SDK.
type Client struct {
	cfg Config
	cld *cloudinary.Cloudinary
	sc  tools.StatsClient
}

// Option modifies a Client at construction.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.cld.Upload.Client = *c }
}

// WithStats records every provider call in sc.
func WithStats(sc tools.StatsClient) Option {
	return func(cl *Client) { cl.sc = sc }
}

// New returns a Client for the provided account. An account without key and
// secret can still upload through an unsigned preset.
func New(cfg Config, ops ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "hosting config")
	}
	cld.Upload.Config.API.UploadPrefix = cfg.BaseURL

	c := &Client{cfg: cfg, cld: cld}
	for _, op := range ops {
		op(c)
	}
	return c, nil
}

// UploadRes is the subset of the provider's upload response that is used.
type UploadRes struct {
	SecureURL    string
	URL          string
	PublicID     string
	ResourceType string
	Format       string
}

// DeliveryURL returns the canonical URL of the uploaded asset, or "" if the
// provider did not return one.
func (r UploadRes) DeliveryURL() string {
	if r.SecureURL != "" {
		return r.SecureURL
	}
	return r.URL
}

// Upload sends the contents of r to the provider using the unsigned upload
// preset. A response without a delivery URL is not an error here; callers
// decide what to do with it.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (res UploadRes, err error) {
	defer func() { c.record("upload", err) }()

	up, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		UploadPreset: c.cfg.UploadPreset,
		Unsigned:     api.Bool(true),
	})
	if err != nil {
		return res, errors.Wrapf(err, "upload %s", filename)
	}
	if up.Error.Message != "" {
		return res, &Error{Op: "upload", Message: up.Error.Message}
	}

	res = UploadRes{
		SecureURL:    up.SecureURL,
		URL:          up.URL,
		PublicID:     up.PublicID,
		ResourceType: up.ResourceType,
		Format:       up.Format,
	}
	return res, nil
}

// Destroy removes a stored asset. resourceType is the media kind the asset was
// uploaded as ("image" or "video").
func (c *Client) Destroy(ctx context.Context, assetID, resourceType string) (err error) {
	defer func() { c.record("destroy", err) }()

	if assetID == "" {
		return errors.New("destroy: asset id must be provided")
	}
	if resourceType == "" {
		resourceType = "image"
	}

	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     assetID,
		ResourceType: resourceType,
	})
	if err != nil {
		return errors.Wrapf(err, "destroy %s", assetID)
	}
	if res.Error.Message != "" {
		return &Error{Op: "destroy", Message: res.Error.Message}
	}
	if res.Result != "ok" {
		return &Error{Op: "destroy", Message: "result: " + res.Result}
	}
	return nil
}

// Sign signs params with the account's API secret.
func (c *Client) Sign(params map[string]interface{}) (string, error) {
	return Sign(params, c.cfg.APISecret)
}

func (c *Client) record(op string, err error) {
	if c.sc == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.sc.Count(MetricRequests, 1, []string{op, status})
}

// AssetIDFromURL derives an asset id from a delivery URL by taking the last
// path segment without its extension. Only used for media stored without an
// asset id; it does not handle ids nested in folders.
func AssetIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
