package scoredb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ScoreDBImpl implements Repository on bun.
type ScoreDBImpl struct {
	DB *bun.DB
}

func (db *ScoreDBImpl) UpsertScore(ctx context.Context, score *Score) error {
	_, err := db.DB.NewInsert().
		Model(score).
		On("CONFLICT (player_id, course_id, hole) DO UPDATE").
		Set("gross = EXCLUDED.gross, recorded_at = EXCLUDED.recorded_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert score for player %s hole %d: %w", score.PlayerID, score.Hole, err)
	}
	return nil
}

func (db *ScoreDBImpl) RecentScores(ctx context.Context, limit int) ([]Score, error) {
	var scores []Score
	err := db.DB.NewSelect().
		Model(&scores).
		Order("recorded_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent scores: %w", err)
	}
	return scores, nil
}

func (db *ScoreDBImpl) PlayerCourseScores(ctx context.Context, playerID uuid.UUID, courseID int64) ([]Score, error) {
	var scores []Score
	err := db.DB.NewSelect().
		Model(&scores).
		Where("player_id = ?", playerID).
		Where("course_id = ?", courseID).
		Order("hole ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores for player %s on course %d: %w", playerID, courseID, err)
	}
	return scores, nil
}

func (db *ScoreDBImpl) AllScores(ctx context.Context) ([]Score, error) {
	var scores []Score
	err := db.DB.NewSelect().
		Model(&scores).
		Order("recorded_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}
	return scores, nil
}
