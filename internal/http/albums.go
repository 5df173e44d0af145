package http

import (
	"net/http"
	cl "photo-album/pkg/catelog"
	"strings"

	httputils "github.com/twitsprout/tools/http"
	"gopkg.in/guregu/null.v3"
)

// ListAlbums lists the albums under the parentId query parameter, the top
// level when it is absent, or every album when it is "all".
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req := parseListAlbumsRequest(r)
	res, err := h.AlbumStore.ListAlbums(ctx, req)
	if err != nil {
		h.writeError(w, r, "ListAlbums", "failed to fetch albums", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func parseListAlbumsRequest(r *http.Request) cl.ListAlbumsReq {
	parentID := strings.TrimSpace(r.URL.Query().Get("parentId"))
	switch parentID {
	case cl.AllAlbums:
		return cl.ListAlbumsReq{All: true}
	case "", cl.RootAlbum:
		return cl.ListAlbumsReq{}
	}
	return cl.ListAlbumsReq{ParentID: null.StringFrom(parentID)}
}

// GetAncestors returns the breadcrumb trail of the album given by id, from
// the top level down to the album itself.
func (h *Handler) GetAncestors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	id, err := parseIDQuery(r)
	if err != nil {
		h.writeBadRequest(w, r, "GetAncestors", err)
		return
	}

	_ = httputils.WriteJSON(w, v, h.AlbumStore.GetAncestors(ctx, id), http.StatusOK)
}

// CreateAlbum creates an album under the optional parent_id.
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseCreateAlbumRequest(r)
	if err != nil {
		h.writeBadRequest(w, r, "CreateAlbum", err)
		return
	}

	if req.ParentID.Valid {
		_, err := h.AlbumStore.GetAlbum(ctx, req.ParentID.String)
		if err == cl.ErrNotFound {
			err = cl.ErrParentNotFound
		}
		if err != nil {
			h.writeError(w, r, "CreateAlbum", "failed to create album", err)
			return
		}
	}

	res, err := h.AlbumStore.CreateAlbum(ctx, req)
	if err != nil {
		h.writeError(w, r, "CreateAlbum", "failed to create album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusCreated)
}

func parseCreateAlbumRequest(r *http.Request) (cl.CreateAlbumRequest, error) {
	var req cl.CreateAlbumRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		return req, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, cl.ErrMissingName
	}
	req.ParentID = cl.NormalizeAlbumID(req.ParentID)
	return req, nil
}

// RenameAlbum changes the name of an album.
func (h *Handler) RenameAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseRenameAlbumRequest(r)
	if err != nil {
		h.writeBadRequest(w, r, "RenameAlbum", err)
		return
	}

	res, err := h.AlbumStore.RenameAlbum(ctx, req)
	if err != nil {
		h.writeError(w, r, "RenameAlbum", "failed to update album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func parseRenameAlbumRequest(r *http.Request) (cl.RenameAlbumRequest, error) {
	var req cl.RenameAlbumRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		return req, err
	}

	if req.ID == "" {
		return req, cl.ErrMissingID
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return req, cl.ErrMissingName
	}
	return req, nil
}

// DeleteAlbum removes an empty album.
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	id, err := parseIDQuery(r)
	if err != nil {
		h.writeBadRequest(w, r, "DeleteAlbum", err)
		return
	}

	if err := h.AlbumStore.DeleteAlbum(ctx, id); err != nil {
		h.writeError(w, r, "DeleteAlbum", "failed to delete album", err)
		return
	}

	_ = httputils.WriteJSON(w, v, cl.DeleteRes{Success: true}, http.StatusOK)
}

func parseIDQuery(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		return "", cl.ErrMissingID
	}
	return id, nil
}
