package catelog

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// RootAlbum is the album id clients send to mean "no album".
const RootAlbum = "root"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Media struct {
	ID          string      `json:"id" db:"id"`
	AlbumID     null.String `json:"album_id" db:"album_id"`
	Type        string      `json:"type" db:"type"`
	URL         string      `json:"url" db:"url"`
	AssetID     null.String `json:"asset_id" db:"asset_id"`
	Title       null.String `json:"title" db:"title"`
	Description null.String `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

type ListMediaReq struct {
	AlbumID     null.String
	SearchQuery string
}

type AddMediaRequest struct {
	AlbumID     null.String `json:"album_id"`
	Type        string      `json:"type"`
	URL         string      `json:"url"`
	AssetID     null.String `json:"asset_id"`
	Title       null.String `json:"title"`
	Description null.String `json:"description"`
}

// UpdateMediaRequest always sets the title. Description is only written when
// it is present in the request.
type UpdateMediaRequest struct {
	ID          string      `json:"id"`
	Title       null.String `json:"title"`
	Description null.String `json:"description"`
}

type SignUploadRequest struct {
	ParamsToSign map[string]interface{} `json:"paramsToSign"`
}

type SignUploadRes struct {
	Signature string `json:"signature"`
}

// ValidMediaType reports whether t is one of the supported media kinds.
func ValidMediaType(t string) bool {
	return t == MediaTypeImage || t == MediaTypeVideo
}

// NormalizeAlbumID maps the empty and root sentinels to a null album reference.
func NormalizeAlbumID(id null.String) null.String {
	if !id.Valid || id.String == "" || id.String == RootAlbum {
		return null.String{}
	}
	return id
}
