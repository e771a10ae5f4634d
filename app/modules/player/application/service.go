package playerservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
)

// ErrInvalidRegistration marks registration input that failed validation.
var ErrInvalidRegistration = errors.New("invalid registration")

// RegistrationInput is the caller-supplied player data.
type RegistrationInput struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	HandicapIndex float64 `json:"handicap_index"`
}

// Validate checks registration input. Handicap indexes beyond ±54 are
// outside what the World Handicap System issues.
func (in RegistrationInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidRegistration)
	}
	if in.HandicapIndex < -54 || in.HandicapIndex > 54 {
		return fmt.Errorf("handicap index %.1f out of range: %w", in.HandicapIndex, ErrInvalidRegistration)
	}
	return nil
}

// PlayerService manages player registration.
type PlayerService struct {
	repo   playerdb.Repository
	logger *slog.Logger
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo playerdb.Repository, logger *slog.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: logger}
}

// Register creates a new player.
func (s *PlayerService) Register(ctx context.Context, in RegistrationInput) (*playerdb.Player, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	player := &playerdb.Player{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		HandicapIndex: in.HandicapIndex,
	}
	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "player registered",
		slog.String("player_id", player.ID.String()),
		slog.String("name", player.Name),
	)
	return player, nil
}

// List returns all registered players.
func (s *PlayerService) List(ctx context.Context) ([]playerdb.Player, error) {
	return s.repo.ListPlayers(ctx)
}

// Get returns one player by id.
func (s *PlayerService) Get(ctx context.Context, id uuid.UUID) (*playerdb.Player, error) {
	return s.repo.GetPlayer(ctx, id)
}

// Update replaces a player's registration details.
func (s *PlayerService) Update(ctx context.Context, id uuid.UUID, in RegistrationInput) (*playerdb.Player, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	player := &playerdb.Player{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		HandicapIndex: in.HandicapIndex,
	}
	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Delete removes a player.
func (s *PlayerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePlayer(ctx, id)
}
