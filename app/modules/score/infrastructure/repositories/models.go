package scoredb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/duffers-cup/clubhouse/internal/golf"
)

// Score is one recorded gross score. The unique index on (player_id,
// course_id, hole) backs the upsert: a later submission for the same hole
// overwrites, it never duplicates.
type Score struct {
	bun.BaseModel `bun:"table:scores"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	PlayerID   uuid.UUID `bun:"player_id,notnull,type:uuid" json:"player_id"`
	CourseID   int64     `bun:"course_id,notnull" json:"course_id"`
	Hole       int       `bun:"hole,notnull" json:"hole"`
	Gross      int       `bun:"gross,notnull" json:"gross"`
	RecordedAt time.Time `bun:"recorded_at,notnull,default:current_timestamp" json:"recorded_at"`
}

// ToGolf converts the stored record into the engine's score shape.
func (s *Score) ToGolf() golf.ScoreEntry {
	return golf.ScoreEntry{
		PlayerID:   s.PlayerID.String(),
		CourseID:   s.CourseID,
		Hole:       s.Hole,
		Gross:      s.Gross,
		RecordedAt: s.RecordedAt,
	}
}

// ToGolfEntries converts a batch of stored scores, preserving order.
func ToGolfEntries(scores []Score) []golf.ScoreEntry {
	entries := make([]golf.ScoreEntry, 0, len(scores))
	for i := range scores {
		entries = append(entries, scores[i].ToGolf())
	}
	return entries
}
