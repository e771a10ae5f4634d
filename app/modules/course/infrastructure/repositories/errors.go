package coursedb

import "errors"

// ErrCourseNotFound is returned when a course id has no stored record.
var ErrCourseNotFound = errors.New("course not found")
