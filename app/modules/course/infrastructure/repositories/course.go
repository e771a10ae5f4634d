package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/duffers-cup/clubhouse/internal/golf"
)

// CourseDBImpl implements Repository on bun.
type CourseDBImpl struct {
	DB *bun.DB
}

func (db *CourseDBImpl) ListCourses(ctx context.Context) ([]golf.Course, error) {
	var records []Course
	err := db.DB.NewSelect().
		Model(&records).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]golf.Course, 0, len(records))
	for i := range records {
		courses = append(courses, records[i].ToGolf())
	}
	return courses, nil
}

func (db *CourseDBImpl) GetCourse(ctx context.Context, id int64) (golf.Course, error) {
	var record Course
	err := db.DB.NewSelect().
		Model(&record).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return golf.Course{}, fmt.Errorf("course %d: %w", id, ErrCourseNotFound)
		}
		return golf.Course{}, fmt.Errorf("failed to fetch course %d: %w", id, err)
	}
	return record.ToGolf(), nil
}

func (db *CourseDBImpl) UpsertCourse(ctx context.Context, course golf.Course) (int64, error) {
	record := Course{
		ID:    course.ID,
		Name:  course.Name,
		Par:   course.Par,
		Tees:  course.Tees,
		Holes: course.Holes,
	}

	_, err := db.DB.NewInsert().
		Model(&record).
		On("CONFLICT (name) DO UPDATE").
		Set("par = EXCLUDED.par, tees = EXCLUDED.tees, holes = EXCLUDED.holes").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert course %q: %w", course.Name, err)
	}
	return record.ID, nil
}
