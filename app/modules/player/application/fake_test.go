package playerservice

import (
	"context"

	"github.com/google/uuid"

	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
)

// FakePlayerRepository provides a programmable stub for the playerdb.Repository interface.
type FakePlayerRepository struct {
	trace []string

	CreatePlayerFunc func(ctx context.Context, player *playerdb.Player) error
	ListPlayersFunc  func(ctx context.Context) ([]playerdb.Player, error)
	GetPlayerFunc    func(ctx context.Context, id uuid.UUID) (*playerdb.Player, error)
	UpdatePlayerFunc func(ctx context.Context, player *playerdb.Player) error
	DeletePlayerFunc func(ctx context.Context, id uuid.UUID) error

	LastCreated *playerdb.Player
	LastUpdated *playerdb.Player
}

// NewFakePlayerRepository initializes a new FakePlayerRepository with an empty trace.
func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakePlayerRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlayerRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepository) CreatePlayer(ctx context.Context, player *playerdb.Player) error {
	f.record("CreatePlayer")
	f.LastCreated = player
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, player)
	}
	return nil
}

func (f *FakePlayerRepository) ListPlayers(ctx context.Context) ([]playerdb.Player, error) {
	f.record("ListPlayers")
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx)
	}
	return nil, nil
}

func (f *FakePlayerRepository) GetPlayer(ctx context.Context, id uuid.UUID) (*playerdb.Player, error) {
	f.record("GetPlayer")
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return nil, playerdb.ErrPlayerNotFound
}

func (f *FakePlayerRepository) UpdatePlayer(ctx context.Context, player *playerdb.Player) error {
	f.record("UpdatePlayer")
	f.LastUpdated = player
	if f.UpdatePlayerFunc != nil {
		return f.UpdatePlayerFunc(ctx, player)
	}
	return nil
}

func (f *FakePlayerRepository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	f.record("DeletePlayer")
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, id)
	}
	return nil
}
