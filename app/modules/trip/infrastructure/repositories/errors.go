package tripdb

import "errors"

// ErrEntryNotFound is returned when a schedule entry id has no stored record.
var ErrEntryNotFound = errors.New("schedule entry not found")
