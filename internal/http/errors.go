package http

import (
	"net/http"
	cl "photo-album/pkg/catelog"

	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
)

const (
	errTypeValidation = "validation"
	errTypeNotFound   = "not_found"
	errTypeBackend    = "backend"
)

// writeError logs err under op and writes the matching JSON error response.
// Validation failures are 400, missing rows 404 and everything else 500 with
// msg and the backend details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op, msg string, err error) {
	cause := errors.Cause(err)
	h.Logger.Error("["+op+"] "+msg,
		"request_id", requestid.Get(r.Context()),
		"details", err.Error(),
	)

	res := httputils.JSONErrRes{}
	code := http.StatusInternalServerError
	switch {
	case cl.IsValidation(cause):
		code = http.StatusBadRequest
		res.Error = httputils.JSONErr{Type: errTypeValidation, Message: cause.Error()}
	case cause == cl.ErrNotFound:
		code = http.StatusNotFound
		res.Error = httputils.JSONErr{Type: errTypeNotFound, Message: cause.Error()}
	default:
		res.Error = httputils.JSONErr{Type: errTypeBackend, Message: msg + ": " + err.Error()}
	}
	_ = httputils.WriteJSON(w, r.URL.Query(), res, code)
}

// writeBadRequest writes a 400 for a request that could not be parsed.
func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.Logger.Error("["+op+"] error parsing request",
		"request_id", requestid.Get(r.Context()),
		"details", err.Error(),
	)
	res := httputils.JSONErrRes{Error: httputils.JSONErr{Type: errTypeValidation, Message: err.Error()}}
	_ = httputils.WriteJSON(w, r.URL.Query(), res, http.StatusBadRequest)
}
