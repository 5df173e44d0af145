package http

import (
	"net/http"
	cl "photo-album/pkg/catelog"

	httputils "github.com/twitsprout/tools/http"
)

// SignUpload signs client supplied upload parameters with the server held
// secret so the client can upload to the hosting provider directly.
func (h *Handler) SignUpload(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()

	var req cl.SignUploadRequest
	if err := httputils.ReadJSON(r.Body, &req); err != nil {
		h.writeBadRequest(w, r, "SignUpload", err)
		return
	}
	if req.ParamsToSign == nil {
		h.writeBadRequest(w, r, "SignUpload", cl.ErrMissingParams)
		return
	}

	sig, err := h.MediaHost.Sign(req.ParamsToSign)
	if err != nil {
		h.writeError(w, r, "SignUpload", "failed to sign upload", err)
		return
	}
	_ = httputils.WriteJSON(w, v, cl.SignUploadRes{Signature: sig}, http.StatusOK)
}
