package scoredb

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence surface for score entries.
type Repository interface {
	// UpsertScore writes one score, overwriting any previous entry for the
	// same (player, course, hole).
	UpsertScore(ctx context.Context, score *Score) error
	// RecentScores returns up to limit scores, newest first.
	RecentScores(ctx context.Context, limit int) ([]Score, error)
	// PlayerCourseScores returns one player's scores on one course, in
	// hole order.
	PlayerCourseScores(ctx context.Context, playerID uuid.UUID, courseID int64) ([]Score, error)
	// AllScores returns every score, oldest first, for trip-wide
	// aggregation.
	AllScores(ctx context.Context) ([]Score, error)
}
