package tripdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ScheduleEntry is one item on the trip's daily schedule: a tee time, a
// dinner, a shuttle departure.
type ScheduleEntry struct {
	bun.BaseModel `bun:"table:schedule_entries"`

	ID       uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Title    string    `bun:"title,notnull" json:"title"`
	Location string    `bun:"location" json:"location,omitempty"`
	StartsAt time.Time `bun:"starts_at,notnull" json:"starts_at"`
	Notes    string    `bun:"notes" json:"notes,omitempty"`
}
