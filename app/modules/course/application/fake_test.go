package courseservice

import (
	"context"

	coursedb "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/internal/golf"
)

// FakeCourseRepository provides a programmable stub for the coursedb.Repository interface.
type FakeCourseRepository struct {
	trace []string

	ListCoursesFunc  func(ctx context.Context) ([]golf.Course, error)
	GetCourseFunc    func(ctx context.Context, id int64) (golf.Course, error)
	UpsertCourseFunc func(ctx context.Context, course golf.Course) (int64, error)

	Upserted []golf.Course
}

// NewFakeCourseRepository initializes a new FakeCourseRepository with an empty trace.
func NewFakeCourseRepository() *FakeCourseRepository {
	return &FakeCourseRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeCourseRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCourseRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCourseRepository) ListCourses(ctx context.Context) ([]golf.Course, error) {
	f.record("ListCourses")
	if f.ListCoursesFunc != nil {
		return f.ListCoursesFunc(ctx)
	}
	return nil, nil
}

func (f *FakeCourseRepository) GetCourse(ctx context.Context, id int64) (golf.Course, error) {
	f.record("GetCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, id)
	}
	return golf.Course{}, coursedb.ErrCourseNotFound
}

func (f *FakeCourseRepository) UpsertCourse(ctx context.Context, course golf.Course) (int64, error) {
	f.record("UpsertCourse")
	f.Upserted = append(f.Upserted, course)
	if f.UpsertCourseFunc != nil {
		return f.UpsertCourseFunc(ctx, course)
	}
	return int64(len(f.Upserted)), nil
}
