package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PlayerDBImpl implements Repository on bun.
type PlayerDBImpl struct {
	DB *bun.DB
}

func (db *PlayerDBImpl) CreatePlayer(ctx context.Context, player *Player) error {
	_, err := db.DB.NewInsert().
		Model(player).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create player %s: %w", player.ID, err)
	}
	return nil
}

func (db *PlayerDBImpl) ListPlayers(ctx context.Context) ([]Player, error) {
	var players []Player
	err := db.DB.NewSelect().
		Model(&players).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (db *PlayerDBImpl) GetPlayer(ctx context.Context, id uuid.UUID) (*Player, error) {
	var player Player
	err := db.DB.NewSelect().
		Model(&player).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", id, ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("failed to fetch player %s: %w", id, err)
	}
	return &player, nil
}

func (db *PlayerDBImpl) UpdatePlayer(ctx context.Context, player *Player) error {
	res, err := db.DB.NewUpdate().
		Model(player).
		Column("name", "email", "handicap_index").
		Where("id = ?", player.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", player.ID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("player %s: %w", player.ID, ErrPlayerNotFound)
	}
	return nil
}

func (db *PlayerDBImpl) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	res, err := db.DB.NewDelete().
		Model((*Player)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete player %s: %w", id, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("player %s: %w", id, ErrPlayerNotFound)
	}
	return nil
}
