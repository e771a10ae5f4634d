package courseservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/duffers-cup/clubhouse/internal/golf"
)

// courseDataset mirrors the static JSON course file shipped with the trip.
type courseDataset struct {
	Courses []golf.Course `json:"courses"`
}

// ImportCourses reads the static course dataset and upserts every course it
// describes, keyed by name. Re-running the import refreshes tee and hole
// data without duplicating courses.
func (s *CourseService) ImportCourses(ctx context.Context, r io.Reader) (int, error) {
	var dataset courseDataset
	if err := json.NewDecoder(r).Decode(&dataset); err != nil {
		return 0, fmt.Errorf("failed to decode course dataset: %w", err)
	}

	imported := 0
	for _, course := range dataset.Courses {
		if err := validateCourse(course); err != nil {
			return imported, fmt.Errorf("course %q: %w", course.Name, err)
		}
		id, err := s.repo.UpsertCourse(ctx, course)
		if err != nil {
			return imported, err
		}
		imported++
		s.logger.InfoContext(ctx, "imported course",
			slog.String("name", course.Name),
			slog.Int64("id", id),
			slog.Int("holes", len(course.Holes)),
		)
	}
	return imported, nil
}

func validateCourse(c golf.Course) error {
	if c.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(c.Holes) > 18 {
		return fmt.Errorf("%d holes exceeds 18", len(c.Holes))
	}
	seen := make(map[int]bool, len(c.Holes))
	for _, h := range c.Holes {
		if h.Number < 1 || h.Number > 18 {
			return fmt.Errorf("hole number %d out of range", h.Number)
		}
		if seen[h.Number] {
			return fmt.Errorf("duplicate hole %d", h.Number)
		}
		seen[h.Number] = true
		if h.Par < 3 || h.Par > 5 {
			return fmt.Errorf("hole %d par %d out of range", h.Number, h.Par)
		}
	}
	return nil
}
