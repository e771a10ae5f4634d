package tripservice

import (
	"context"

	"github.com/google/uuid"

	tripdb "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/repositories"
)

// FakeScheduleRepository provides a programmable stub for the tripdb.Repository interface.
type FakeScheduleRepository struct {
	trace []string

	CreateEntryFunc func(ctx context.Context, entry *tripdb.ScheduleEntry) error
	ListEntriesFunc func(ctx context.Context) ([]tripdb.ScheduleEntry, error)
	DeleteEntryFunc func(ctx context.Context, id uuid.UUID) error

	LastCreated *tripdb.ScheduleEntry
}

// NewFakeScheduleRepository initializes a new FakeScheduleRepository with an empty trace.
func NewFakeScheduleRepository() *FakeScheduleRepository {
	return &FakeScheduleRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScheduleRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScheduleRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScheduleRepository) CreateEntry(ctx context.Context, entry *tripdb.ScheduleEntry) error {
	f.record("CreateEntry")
	f.LastCreated = entry
	if f.CreateEntryFunc != nil {
		return f.CreateEntryFunc(ctx, entry)
	}
	return nil
}

func (f *FakeScheduleRepository) ListEntries(ctx context.Context) ([]tripdb.ScheduleEntry, error) {
	f.record("ListEntries")
	if f.ListEntriesFunc != nil {
		return f.ListEntriesFunc(ctx)
	}
	return nil, nil
}

func (f *FakeScheduleRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	f.record("DeleteEntry")
	if f.DeleteEntryFunc != nil {
		return f.DeleteEntryFunc(ctx, id)
	}
	return nil
}
