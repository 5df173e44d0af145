package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
)

func serve(h *Handler, method, url, body string) *httptest.ResponseRecorder {
	h.Handler()
	wr := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	h.router.ServeHTTP(wr, req)
	return wr
}

func decode(t *testing.T, wr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := jsonutils.Decode(wr.Body, v); err != nil {
		t.Fatalf("unexpected error returned from decoding response body: %s", err.Error())
	}
}

func errRes(typ, msg string) httputils.JSONErrRes {
	return httputils.JSONErrRes{
		Error: httputils.JSONErr{
			Type:    typ,
			Message: msg,
		},
	}
}
