package client

import (
	"context"
	cl "photo-album/pkg/catelog"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

// Navigation is the browsing position of one session: the open album, the
// trail that led to it and the search text.
type Navigation struct {
	Current     *cl.Album
	Breadcrumbs []cl.Album
	Search      string
}

// AlbumID returns the id of the open album, or "" at the top level.
func (n *Navigation) AlbumID() string {
	if n.Current == nil {
		return ""
	}
	return n.Current.ID
}

// Enter opens album a and pushes it on the breadcrumb trail.
func (n *Navigation) Enter(a cl.Album) {
	n.Current = &a
	n.Breadcrumbs = append(n.Breadcrumbs, a)
}

// JumpTo truncates the trail after the crumb at index i and opens it. An
// index of -1, or one out of range, returns to the top level.
func (n *Navigation) JumpTo(i int) {
	if i < 0 || i >= len(n.Breadcrumbs) {
		n.Current = nil
		n.Breadcrumbs = nil
		return
	}
	n.Breadcrumbs = n.Breadcrumbs[:i+1]
	a := n.Breadcrumbs[i]
	n.Current = &a
}

// Open replaces the position with the album id, rebuilding the trail from
// the service. An empty id returns to the top level.
func (n *Navigation) Open(ctx context.Context, c *Client, id string) error {
	if id == "" || id == cl.RootAlbum {
		n.JumpTo(-1)
		return nil
	}
	chain, err := c.Ancestors(ctx, id)
	if err != nil {
		return err
	}
	if len(chain) == 0 || chain[len(chain)-1].ID != id {
		return errors.Wrap(cl.ErrNotFound, "open album "+id)
	}
	n.Breadcrumbs = chain
	a := chain[len(chain)-1]
	n.Current = &a
	return nil
}

// View is what is shown for a navigation position.
type View struct {
	Albums []cl.Album
	Media  []cl.Media
}

// Fetch loads the albums and media for the position in n. Rows repeated by
// the service are dropped.
func Fetch(ctx context.Context, c *Client, n *Navigation) (View, error) {
	var v View
	albums, err := c.ListAlbums(ctx, n.AlbumID())
	if err != nil {
		return v, errors.Wrap(err, "fetch albums")
	}
	media, err := c.ListMedia(ctx, n.AlbumID(), n.Search)
	if err != nil {
		return v, errors.Wrap(err, "fetch media")
	}
	v.Albums = uniqueAlbums(albums)
	v.Media = uniqueMedia(media)
	return v, nil
}

func uniqueAlbums(in []cl.Album) []cl.Album {
	seen := make(map[string]bool, len(in))
	out := make([]cl.Album, 0, len(in))
	for _, a := range in {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

func uniqueMedia(in []cl.Media) []cl.Media {
	seen := make(map[string]bool, len(in))
	out := make([]cl.Media, 0, len(in))
	for _, m := range in {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

func nullString(s string) null.String {
	return null.NewString(s, s != "")
}
