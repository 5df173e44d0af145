package catelog

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// AllAlbums is the parent filter that disables parent scoping.
const AllAlbums = "all"

type Album struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	ParentID  null.String `json:"parent_id" db:"parent_id"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// ListAlbumsReq scopes a listing. A zero ParentID means top level, unless All
// is set.
type ListAlbumsReq struct {
	ParentID null.String
	All      bool
}

type CreateAlbumRequest struct {
	Name     string      `json:"name"`
	ParentID null.String `json:"parent_id"`
}

type RenameAlbumRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GetAlbumReq struct {
	AlbumID string
}

type DeleteRes struct {
	Success bool `json:"success"`
}
