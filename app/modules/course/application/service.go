package courseservice

import (
	"context"
	"log/slog"

	coursedb "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/internal/golf"
)

// CourseService exposes course reference data to the rest of the app.
type CourseService struct {
	repo   coursedb.Repository
	logger *slog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo coursedb.Repository, logger *slog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

// ListCourses returns every course in the trip rotation.
func (s *CourseService) ListCourses(ctx context.Context) ([]golf.Course, error) {
	return s.repo.ListCourses(ctx)
}

// GetCourse returns one course by id.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (golf.Course, error) {
	return s.repo.GetCourse(ctx, id)
}
