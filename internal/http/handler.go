package http

import (
	"photo-album/internal"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"
)

type Handler struct {
	AppName    string
	Version    string
	router     *mux.Router
	Logger     tools.Logger
	Stats      tools.StatsClient
	AlbumStore internal.AlbumStore
	MediaStore internal.MediaStore
	MediaHost  internal.MediaHost
}
