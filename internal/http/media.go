package http

import (
	"net/http"
	"photo-album/internal/hosting"
	cl "photo-album/pkg/catelog"
	"strings"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
	"gopkg.in/guregu/null.v3"
)

// ListMedia lists media in the albumId query parameter (all media when it is
// absent or "root"), optionally filtered by searchQuery.
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req := cl.ListMediaReq{
		AlbumID:     cl.NormalizeAlbumID(null.StringFrom(strings.TrimSpace(v.Get("albumId")))),
		SearchQuery: v.Get("searchQuery"),
	}
	res, err := h.MediaStore.ListMedia(ctx, req)
	if err != nil {
		h.writeError(w, r, "ListMedia", "failed to fetch media", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// GetMedia returns a single media item.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	res, err := h.MediaStore.GetMedia(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, "GetMedia", "failed to fetch media", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// AddMedia records an uploaded asset.
func (h *Handler) AddMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseAddMediaRequest(r)
	if err != nil {
		h.writeBadRequest(w, r, "AddMedia", err)
		return
	}

	res, err := h.MediaStore.AddMedia(ctx, req)
	if err != nil {
		h.writeError(w, r, "AddMedia", "failed to add media", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusCreated)
}

func parseAddMediaRequest(r *http.Request) (cl.AddMediaRequest, error) {
	var req cl.AddMediaRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		return req, err
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return req, cl.ErrMissingURL
	}
	if !cl.ValidMediaType(req.Type) {
		return req, cl.ErrInvalidMediaType
	}
	req.AlbumID = cl.NormalizeAlbumID(req.AlbumID)
	return req, nil
}

// UpdateMedia sets the title and, when present, the description of a media
// item.
func (h *Handler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	req, err := parseUpdateMediaRequest(r)
	if err != nil {
		h.writeBadRequest(w, r, "UpdateMedia", err)
		return
	}

	res, err := h.MediaStore.UpdateMedia(ctx, req)
	if err != nil {
		h.writeError(w, r, "UpdateMedia", "failed to update media", err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func parseUpdateMediaRequest(r *http.Request) (cl.UpdateMediaRequest, error) {
	var req cl.UpdateMediaRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		return req, err
	}

	if req.ID == "" {
		return req, cl.ErrMissingID
	}
	return req, nil
}

// DeleteMedia removes the hosted asset and then the media row. The asset is
// removed on a best effort basis: a failure there is logged and the row is
// still deleted, leaving at worst an orphaned asset on the provider.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, err := parseIDQuery(r)
	if err != nil {
		h.writeBadRequest(w, r, "DeleteMedia", err)
		return
	}

	m, err := h.MediaStore.GetMedia(ctx, id)
	if err != nil {
		h.writeError(w, r, "DeleteMedia", "failed to delete media", err)
		return
	}

	assetID := m.AssetID.String
	if assetID == "" {
		assetID = hosting.AssetIDFromURL(m.URL)
	}
	if h.MediaHost != nil && assetID != "" {
		if err := h.MediaHost.Destroy(ctx, assetID, m.Type); err != nil {
			h.Logger.Warn("[DeleteMedia] unable to delete hosted asset",
				"request_id", reqID,
				"media_id", m.ID,
				"asset_id", assetID,
				"details", err.Error(),
			)
		}
	}

	if err := h.MediaStore.DeleteMedia(ctx, id); err != nil {
		h.writeError(w, r, "DeleteMedia", "failed to delete media", err)
		return
	}

	_ = httputils.WriteJSON(w, v, cl.DeleteRes{Success: true}, http.StatusOK)
}
