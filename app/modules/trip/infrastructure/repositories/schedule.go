package tripdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ScheduleDBImpl implements Repository on bun.
type ScheduleDBImpl struct {
	DB *bun.DB
}

func (db *ScheduleDBImpl) CreateEntry(ctx context.Context, entry *ScheduleEntry) error {
	_, err := db.DB.NewInsert().
		Model(entry).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create schedule entry %s: %w", entry.ID, err)
	}
	return nil
}

func (db *ScheduleDBImpl) ListEntries(ctx context.Context) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry
	err := db.DB.NewSelect().
		Model(&entries).
		Order("starts_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}

func (db *ScheduleDBImpl) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	res, err := db.DB.NewDelete().
		Model((*ScheduleEntry)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry %s: %w", id, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("schedule entry %s: %w", id, ErrEntryNotFound)
	}
	return nil
}
