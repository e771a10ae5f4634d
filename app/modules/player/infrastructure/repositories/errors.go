package playerdb

import "errors"

// ErrPlayerNotFound is returned when a player id has no stored record.
var ErrPlayerNotFound = errors.New("player not found")
