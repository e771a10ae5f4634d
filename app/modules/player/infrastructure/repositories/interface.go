package playerdb

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence surface for player registration.
type Repository interface {
	CreatePlayer(ctx context.Context, player *Player) error
	ListPlayers(ctx context.Context) ([]Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*Player, error)
	UpdatePlayer(ctx context.Context, player *Player) error
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}
