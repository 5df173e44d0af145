package postgres

import (
	"context"
	cl "photo-album/pkg/catelog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/guregu/null.v3"
)

func TestBuildListAlbumsQuery(t *testing.T) {
	table := []struct {
		label    string
		req      cl.ListAlbumsReq
		contains []string
		excludes []string
		expArgs  []interface{}
	}{
		{
			label:    "top level filters on null parent",
			req:      cl.ListAlbumsReq{},
			contains: []string{`FROM albums`, `WHERE albums."parent_id" IS NULL`, `ORDER BY albums."created_at" DESC`},
			expArgs:  nil,
		},
		{
			label:    "parent scoped filters on parent id",
			req:      cl.ListAlbumsReq{ParentID: null.StringFrom("p1")},
			contains: []string{`WHERE albums."parent_id" = $1`},
			expArgs:  []interface{}{"p1"},
		},
		{
			label:    "all drops the parent filter",
			req:      cl.ListAlbumsReq{All: true},
			contains: []string{`FROM albums ORDER BY`},
			excludes: []string{`WHERE`},
			expArgs:  nil,
		},
	}
	for _, ts := range table {
		t.Run(ts.label, func(t *testing.T) {
			qv, err := buildListAlbumsQuery(ts.req)
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			for _, s := range ts.contains {
				if !strings.Contains(qv.query, s) {
					t.Errorf("query %q does not contain %q", qv.query, s)
				}
			}
			for _, s := range ts.excludes {
				if strings.Contains(qv.query, s) {
					t.Errorf("query %q unexpectedly contains %q", qv.query, s)
				}
			}
			if diff := cmp.Diff(ts.expArgs, qv.args, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("unexpected args: %s", diff)
			}
		})
	}
}

func TestBuildDeleteAlbumQuery(t *testing.T) {
	qv, err := buildDeleteAlbumQuery("a1")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	for _, s := range []string{
		`DELETE FROM albums WHERE "id" = $1`,
		`NOT EXISTS (SELECT 1 FROM albums c WHERE c.parent_id = $2)`,
		`NOT EXISTS (SELECT 1 FROM media m WHERE m.album_id = $3)`,
	} {
		if !strings.Contains(qv.query, s) {
			t.Errorf("query %q does not contain %q", qv.query, s)
		}
	}
	if diff := cmp.Diff([]interface{}{"a1", "a1", "a1"}, qv.args); diff != "" {
		t.Fatalf("unexpected args: %s", diff)
	}
}

func TestBuildRenameAlbumQuery(t *testing.T) {
	qv, err := buildRenameAlbumQuery(cl.RenameAlbumRequest{ID: "a1", Name: "Trip"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if !strings.HasPrefix(qv.query, `UPDATE albums SET "name" = $1 WHERE "id" = $2 RETURNING`) {
		t.Fatalf("unexpected query: %q", qv.query)
	}
	if diff := cmp.Diff([]interface{}{"Trip", "a1"}, qv.args); diff != "" {
		t.Fatalf("unexpected args: %s", diff)
	}
}

func TestAlbumsRoundTrip(t *testing.T) {
	p := newPostgres(t)
	ctx := context.Background()

	trip := createTestAlbum(ctx, p, t, "Trip", null.String{})
	kyoto := createTestAlbum(ctx, p, t, "Kyoto", null.StringFrom(trip.ID))
	temple := createTestAlbum(ctx, p, t, "Temple", null.StringFrom(kyoto.ID))

	top, err := p.ListAlbums(ctx, cl.ListAlbumsReq{})
	if err != nil {
		t.Fatalf("unexpected error listing top level: %s", err.Error())
	}
	if len(top) != 1 || top[0].Name != "Trip" || top[0].ParentID.Valid {
		t.Fatalf("unexpected top level albums: %+v", top)
	}

	children, err := p.ListAlbums(ctx, cl.ListAlbumsReq{ParentID: null.StringFrom(trip.ID)})
	if err != nil {
		t.Fatalf("unexpected error listing children: %s", err.Error())
	}
	if len(children) != 1 || children[0].ID != kyoto.ID {
		t.Fatalf("unexpected children: %+v", children)
	}

	all, err := p.ListAlbums(ctx, cl.ListAlbumsReq{All: true})
	if err != nil {
		t.Fatalf("unexpected error listing all: %s", err.Error())
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 albums, got %d", len(all))
	}

	chain := p.GetAncestors(ctx, temple.ID)
	var names []string
	for _, a := range chain {
		names = append(names, a.Name)
	}
	if diff := cmp.Diff([]string{"Trip", "Kyoto", "Temple"}, names); diff != "" {
		t.Fatalf("unexpected ancestors: %s", diff)
	}

	if chain := p.GetAncestors(ctx, trip.ID); len(chain) != 1 || chain[0].ID != trip.ID {
		t.Fatalf("unexpected ancestors for top level album: %+v", chain)
	}
	if chain := p.GetAncestors(ctx, "00000000-0000-0000-0000-000000000000"); len(chain) != 0 {
		t.Fatalf("expected empty chain for unknown album, got %+v", chain)
	}

	renamed, err := p.RenameAlbum(ctx, cl.RenameAlbumRequest{ID: kyoto.ID, Name: "Kyoto 2024"})
	if err != nil {
		t.Fatalf("unexpected error renaming: %s", err.Error())
	}
	if renamed.Name != "Kyoto 2024" || renamed.ParentID != kyoto.ParentID {
		t.Fatalf("unexpected renamed album: %+v", renamed)
	}

	if err := p.DeleteAlbum(ctx, kyoto.ID); err != cl.ErrAlbumNotEmpty {
		t.Fatalf("expected ErrAlbumNotEmpty, got %v", err)
	}
	if err := p.DeleteAlbum(ctx, temple.ID); err != nil {
		t.Fatalf("unexpected error deleting leaf album: %s", err.Error())
	}
	if _, err := p.GetAlbum(ctx, temple.ID); err != cl.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := p.DeleteAlbum(ctx, temple.ID); err != cl.ErrNotFound {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}
