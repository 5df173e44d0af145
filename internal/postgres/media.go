package postgres

import (
	"context"
	"database/sql"
	cl "photo-album/pkg/catelog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/pkg/errors"
)

const tableMedia = "media"

const (
	mediaColumnID          = `"id"`
	mediaColumnAlbumID     = `"album_id"`
	mediaColumnType        = `"type"`
	mediaColumnURL         = `"url"`
	mediaColumnAssetID     = `"asset_id"`
	mediaColumnTitle       = `"title"`
	mediaColumnDescription = `"description"`
	mediaColumnCreatedAt   = `"created_at"`
)

var mediaColumns = []string{
	mediaColumnID,
	mediaColumnAlbumID,
	mediaColumnType,
	mediaColumnURL,
	mediaColumnAssetID,
	mediaColumnTitle,
	mediaColumnDescription,
	mediaColumnCreatedAt,
}

// ListMedia lists media newest first. A null album id lists media across all
// albums; a non-empty search query matches title or description.
func (p *Postgres) ListMedia(ctx context.Context, req cl.ListMediaReq) (res []cl.Media, err error) {
	defer func(start time.Time) { p.observe("list_media", start, err) }(p.now())

	qv, err := buildListMediaQuery(req)
	if err != nil {
		return nil, errors.Wrap(err, "build list media query")
	}
	res = []cl.Media{}
	err = p.sqldb.SelectContext(ctx, &res, qv.query, qv.args...)
	if err != nil {
		return nil, errors.Wrap(err, "execute list media query")
	}
	return res, nil
}

func buildListMediaQuery(req cl.ListMediaReq) (QueryValues, error) {
	b := psql.
		Select(tableColumns(tableMedia, mediaColumns)...).
		From(tableMedia)

	if albumID := cl.NormalizeAlbumID(req.AlbumID); albumID.Valid {
		b = b.Where(sq.Eq{tableColumn(tableMedia, mediaColumnAlbumID): albumID.String})
	}
	if s := strings.TrimSpace(req.SearchQuery); s != "" {
		pattern := containsPattern(s)
		b = b.Where(sq.Or{
			sq.ILike{tableColumn(tableMedia, mediaColumnTitle): pattern},
			sq.ILike{tableColumn(tableMedia, mediaColumnDescription): pattern},
		})
	}

	q, args, err := b.
		OrderBy(tableColumn(tableMedia, mediaColumnCreatedAt) + " DESC").
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list media build query into SQL string")
}

func (p *Postgres) GetMedia(ctx context.Context, id string) (res cl.Media, err error) {
	defer func(start time.Time) { p.observe("get_media", start, err) }(p.now())

	qv, err := buildGetMediaQuery(id)
	if err != nil {
		return res, errors.Wrap(err, "build get media query")
	}
	err = p.sqldb.GetContext(ctx, &res, qv.query, qv.args...)
	if err == sql.ErrNoRows {
		return res, cl.ErrNotFound
	}
	if err != nil {
		return res, errors.Wrap(err, "execute get media query")
	}
	return res, nil
}

func buildGetMediaQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Select(tableColumns(tableMedia, mediaColumns)...).
		From(tableMedia).
		Where(sq.Eq{tableColumn(tableMedia, mediaColumnID): id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get media build query into SQL string")
}

func (p *Postgres) AddMedia(ctx context.Context, req cl.AddMediaRequest) (res cl.Media, err error) {
	defer func(start time.Time) { p.observe("add_media", start, err) }(p.now())

	m := cl.Media{
		ID:          uuid.NewString(),
		AlbumID:     cl.NormalizeAlbumID(req.AlbumID),
		Type:        req.Type,
		URL:         req.URL,
		AssetID:     req.AssetID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   p.now().UTC(),
	}
	qv, err := buildAddMediaQuery(m)
	if err != nil {
		return res, errors.Wrap(err, "build add media query")
	}
	err = p.sqldb.GetContext(ctx, &res, qv.query, qv.args...)
	if err != nil {
		return res, errors.Wrap(err, "execute add media query")
	}
	return res, nil
}

func buildAddMediaQuery(m cl.Media) (QueryValues, error) {
	q, args, err := psql.
		Insert(tableMedia).
		Columns(mediaColumns...).
		Values(m.ID, m.AlbumID, m.Type, m.URL, m.AssetID, m.Title, m.Description, m.CreatedAt).
		Suffix(returning(mediaColumns)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "add media build query into SQL string")
}

func (p *Postgres) UpdateMedia(ctx context.Context, req cl.UpdateMediaRequest) (res cl.Media, err error) {
	defer func(start time.Time) { p.observe("update_media", start, err) }(p.now())

	qv, err := buildUpdateMediaQuery(req)
	if err != nil {
		return res, errors.Wrap(err, "build update media query")
	}
	err = p.sqldb.GetContext(ctx, &res, qv.query, qv.args...)
	if err == sql.ErrNoRows {
		return res, cl.ErrNotFound
	}
	if err != nil {
		return res, errors.Wrap(err, "execute update media query")
	}
	return res, nil
}

func buildUpdateMediaQuery(req cl.UpdateMediaRequest) (QueryValues, error) {
	b := psql.
		Update(tableMedia).
		Set(mediaColumnTitle, req.Title)
	if req.Description.Valid {
		b = b.Set(mediaColumnDescription, req.Description)
	}

	q, args, err := b.
		Where(sq.Eq{mediaColumnID: req.ID}).
		Suffix(returning(mediaColumns)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "update media build query into SQL string")
}

func (p *Postgres) DeleteMedia(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { p.observe("delete_media", start, err) }(p.now())

	qv, err := buildDeleteMediaQuery(id)
	if err != nil {
		return errors.Wrap(err, "build delete media query")
	}
	r, err := p.sqldb.ExecContext(ctx, qv.query, qv.args...)
	if err != nil {
		return errors.Wrap(err, "execute delete media query")
	}
	n, err := r.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete media rows affected")
	}
	if n == 0 {
		return cl.ErrNotFound
	}
	return nil
}

func buildDeleteMediaQuery(id string) (QueryValues, error) {
	q, args, err := psql.
		Delete(tableMedia).
		Where(sq.Eq{mediaColumnID: id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete media build query into SQL string")
}
