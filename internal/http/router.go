package http

import (
	"net/http"
	"photo-album/internal/metrics"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LimitReaderMiddleware(1 << 20))
	r.Use(httputils.LoggingMiddleware(h.Logger))
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))
	if h.Stats != nil {
		r.Use(httputils.StatsRouteMiddleware(h.Stats, metrics.HTTPRequestDuration, routeName))
	}

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	versionHandler := httputils.VersionHandler(h.AppName, h.Version, h.Logger)
	r.Methods("GET").Path("/").Name("root").Handler(versionHandler)
	r.Methods("GET").Path("/version").Name("version").Handler(versionHandler)
	if h.Stats != nil {
		r.Methods("GET").Path("/metrics").Name("metrics").Handler(h.Stats.Handler())
	}

	r.Methods("GET").Path("/albums").Name("list_albums").HandlerFunc(h.ListAlbums)
	r.Methods("GET").Path("/albums/ancestors").Name("get_album_ancestors").HandlerFunc(h.GetAncestors)
	r.Methods("POST").Path("/albums").Name("create_album").HandlerFunc(h.CreateAlbum)
	r.Methods("PUT").Path("/albums").Name("rename_album").HandlerFunc(h.RenameAlbum)
	r.Methods("DELETE").Path("/albums").Name("delete_album").HandlerFunc(h.DeleteAlbum)

	r.Methods("GET").Path("/media").Name("list_media").HandlerFunc(h.ListMedia)
	r.Methods("GET").Path("/media/{id}").Name("get_media").HandlerFunc(h.GetMedia)
	r.Methods("POST").Path("/media").Name("add_media").HandlerFunc(h.AddMedia)
	r.Methods("PUT").Path("/media").Name("update_media").HandlerFunc(h.UpdateMedia)
	r.Methods("DELETE").Path("/media").Name("delete_media").HandlerFunc(h.DeleteMedia)

	r.Methods("POST").Path("/sign-upload").Name("sign_upload").HandlerFunc(h.SignUpload)

	h.router = r
	return r
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		return route.GetName()
	}
	return "unknown"
}
