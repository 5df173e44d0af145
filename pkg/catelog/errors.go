package catelog

import "errors"

var ErrNotFound = errors.New("not found")
var ErrMissingID = errors.New("id must be provided")
var ErrMissingName = errors.New("name must be provided in request body")
var ErrMissingURL = errors.New("url must be provided in request body")
var ErrMissingParams = errors.New("paramsToSign must be provided in request body")
var ErrInvalidMediaType = errors.New("type must be image or video")
var ErrParentNotFound = errors.New("parent album does not exist")
var ErrAlbumNotEmpty = errors.New("album still contains albums or media")

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	switch err {
	case ErrMissingID, ErrMissingName, ErrMissingURL, ErrMissingParams,
		ErrInvalidMediaType, ErrParentNotFound, ErrAlbumNotEmpty:
		return true
	}
	return false
}
