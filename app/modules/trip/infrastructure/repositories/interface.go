package tripdb

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence surface for the trip schedule.
type Repository interface {
	CreateEntry(ctx context.Context, entry *ScheduleEntry) error
	ListEntries(ctx context.Context) ([]ScheduleEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}
