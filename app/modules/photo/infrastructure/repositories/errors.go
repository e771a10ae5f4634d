package photodb

import "errors"

// ErrPhotoNotFound is returned when a photo id has no stored record.
var ErrPhotoNotFound = errors.New("photo not found")
