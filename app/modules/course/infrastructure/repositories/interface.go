package coursedb

import (
	"context"

	"github.com/duffers-cup/clubhouse/internal/golf"
)

// Repository is the persistence surface for course reference data.
type Repository interface {
	ListCourses(ctx context.Context) ([]golf.Course, error)
	GetCourse(ctx context.Context, id int64) (golf.Course, error)
	UpsertCourse(ctx context.Context, course golf.Course) (int64, error)
}
