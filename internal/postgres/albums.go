package postgres

import (
	"context"
	"database/sql"
	cl "photo-album/pkg/catelog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/pkg/errors"
)

const tableAlbums = "albums"

const (
	albumsColumnID        = `"id"`
	albumsColumnName      = `"name"`
	albumsColumnParentID  = `"parent_id"`
	albumsColumnCreatedAt = `"created_at"`
)

var albumsColumns = []string{
	albumsColumnID,
	albumsColumnName,
	albumsColumnParentID,
	albumsColumnCreatedAt,
}

func (p *Postgres) ListAlbums(ctx context.Context, req cl.ListAlbumsReq) (res []cl.Album, err error) {
	defer func(start time.Time) { p.observe("list_albums", start, err) }(p.now())

	qv, err := buildListAlbumsQuery(req)
	if err != nil {
		return nil, errors.Wrap(err, "build list albums query")
	}
	res = []cl.Album{}
	err = p.sqldb.SelectContext(ctx, &res, qv.query, qv.args...)
	if err != nil {
		return nil, errors.Wrap(err, "execute list albums query")
	}
	return res, nil
}

func buildListAlbumsQuery(req cl.ListAlbumsReq) (QueryValues, error) {
	b := psql.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums)

	if !req.All {
		if req.ParentID.Valid {
			b = b.Where(sq.Eq{tableColumn(tableAlbums, albumsColumnParentID): req.ParentID.String})
		} else {
			b = b.Where(sq.Eq{tableColumn(tableAlbums, albumsColumnParentID): nil})
		}
	}

	q, args, err := b.
		OrderBy(tableColumn(tableAlbums, albumsColumnCreatedAt) + " DESC").
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list albums build query into SQL string")
}

func (p *Postgres) GetAlbum(ctx context.Context, id string) (res cl.Album, err error) {
	defer func(start time.Time) { p.observe("get_album", start, err) }(p.now())

	qv, err := buildGetAlbumQuery(id)
	if err != nil {
		return res, errors.Wrap(err, "build get album query")
	}
	err = p.sqldb.GetContext(ctx, &res, qv.query, qv.args...)
	if err == sql.ErrNoRows {
		return res, cl.ErrNotFound
	}
	if err != nil {
		return res, errors.Wrap(err, "execute get album query")
	}
	return res, nil
}

func buildGetAlbumQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		Where(sq.Eq{tableColumn(tableAlbums, albumsColumnID): id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get album build query into SQL string")
}

func (p *Postgres) CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (res cl.Album, err error) {
	defer func(start time.Time) { p.observe("create_album", start, err) }(p.now())

	album := cl.Album{
		ID:        uuid.NewString(),
		Name:      req.Name,
		ParentID:  req.ParentID,
		CreatedAt: p.now().UTC(),
	}
	qv, err := buildCreateAlbumQuery(album)
	if err != nil {
		return res, errors.Wrap(err, "build create album query")
	}
	err = p.sqldb.GetContext(ctx, &res, qv.query, qv.args...)
	if err != nil {
		return res, errors.Wrap(err, "execute create album query")
	}
	return res, nil
}

func buildCreateAlbumQuery(a cl.Album) (QueryValues, error) {
	q, args, err := psql.
		Insert(tableAlbums).
		Columns(albumsColumns...).
		Values(a.ID, a.Name, a.ParentID, a.CreatedAt).
		Suffix(returning(albumsColumns)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "create album build query into SQL string")
}

func (p *Postgres) RenameAlbum(ctx context.Context, req cl.RenameAlbumRequest) (res cl.Album, err error) {
	defer func(start time.Time) { p.observe("rename_album", start, err) }(p.now())

	qv, err := buildRenameAlbumQuery(req)
	if err != nil {
		return res, errors.Wrap(err, "build rename album query")
	}
	err = p.sqldb.GetContext(ctx, &res, qv.query, qv.args...)
	if err == sql.ErrNoRows {
		return res, cl.ErrNotFound
	}
	if err != nil {
		return res, errors.Wrap(err, "execute rename album query")
	}
	return res, nil
}

func buildRenameAlbumQuery(req cl.RenameAlbumRequest) (QueryValues, error) {
	q, args, err := psql.
		Update(tableAlbums).
		Set(albumsColumnName, req.Name).
		Where(sq.Eq{albumsColumnID: req.ID}).
		Suffix(returning(albumsColumns)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "rename album build query into SQL string")
}

// DeleteAlbum removes an album that has no child albums and no media. Removing
// a non-empty album fails with ErrAlbumNotEmpty and leaves it untouched.
func (p *Postgres) DeleteAlbum(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { p.observe("delete_album", start, err) }(p.now())

	qv, err := buildDeleteAlbumQuery(id)
	if err != nil {
		return errors.Wrap(err, "build delete album query")
	}
	r, err := p.sqldb.ExecContext(ctx, qv.query, qv.args...)
	if err != nil {
		return errors.Wrap(err, "execute delete album query")
	}
	n, err := r.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete album rows affected")
	}
	if n > 0 {
		return nil
	}

	// Nothing was deleted: either the album is missing or it is not empty.
	if _, err = p.GetAlbum(ctx, id); err != nil {
		return err
	}
	return cl.ErrAlbumNotEmpty
}

func buildDeleteAlbumQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Delete(tableAlbums).
		Where(sq.Eq{albumsColumnID: id}).
		Where("NOT EXISTS (SELECT 1 FROM albums c WHERE c.parent_id = ?)", id).
		Where("NOT EXISTS (SELECT 1 FROM media m WHERE m.album_id = ?)", id).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete album build query into SQL string")
}

// GetAncestors returns the chain of albums from the top level down to id. The
// walk stops at the first failed lookup and returns what it has so far.
func (p *Postgres) GetAncestors(ctx context.Context, id string) []cl.Album {
	var chain []cl.Album
	seen := make(map[string]bool)

	for cur := id; cur != "" && !seen[cur]; {
		seen[cur] = true
		a, err := p.GetAlbum(ctx, cur)
		if err != nil {
			break
		}
		chain = append([]cl.Album{a}, chain...)
		cur = a.ParentID.String
	}

	if chain == nil {
		return []cl.Album{}
	}
	return chain
}
