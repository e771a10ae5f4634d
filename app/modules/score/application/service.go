package scoreservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	scoreevents "github.com/duffers-cup/clubhouse/app/modules/score/events"
	scoredb "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories"
)

// ErrInvalidScore marks score input that failed validation.
var ErrInvalidScore = errors.New("invalid score")

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// SubmitScoreInput is one score submission.
type SubmitScoreInput struct {
	PlayerID uuid.UUID `json:"player_id"`
	CourseID int64     `json:"course_id"`
	Hole     int       `json:"hole"`
	Gross    int       `json:"gross"`
}

// Validate rejects malformed submissions before anything touches storage.
func (in SubmitScoreInput) Validate() error {
	if in.PlayerID == uuid.Nil {
		return fmt.Errorf("player id is required: %w", ErrInvalidScore)
	}
	if in.CourseID <= 0 {
		return fmt.Errorf("course id is required: %w", ErrInvalidScore)
	}
	if in.Hole < 1 || in.Hole > 18 {
		return fmt.Errorf("hole %d out of range: %w", in.Hole, ErrInvalidScore)
	}
	if in.Gross < 1 {
		return fmt.Errorf("gross score %d must be at least 1: %w", in.Gross, ErrInvalidScore)
	}
	return nil
}

// ScoreService records scores and fans out score.recorded events.
type ScoreService struct {
	repo      scoredb.Repository
	publisher message.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewScoreService creates a new ScoreService.
func NewScoreService(repo scoredb.Repository, publisher message.Publisher, logger *slog.Logger) *ScoreService {
	return &ScoreService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitScore validates and upserts one score entry, then publishes a
// score.recorded event. Publishing is best effort: a feed that misses one
// invalidation catches up on its next refresh, so a publish failure never
// rolls back the recorded score.
func (s *ScoreService) SubmitScore(ctx context.Context, in SubmitScoreInput) (*scoredb.Score, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	score := &scoredb.Score{
		PlayerID:   in.PlayerID,
		CourseID:   in.CourseID,
		Hole:       in.Hole,
		Gross:      in.Gross,
		RecordedAt: s.now(),
	}
	if err := s.repo.UpsertScore(ctx, score); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "score recorded",
		slog.String("player_id", in.PlayerID.String()),
		slog.Int64("course_id", in.CourseID),
		slog.Int("hole", in.Hole),
		slog.Int("gross", in.Gross),
	)
	s.publishRecorded(ctx, score)
	return score, nil
}

func (s *ScoreService) publishRecorded(ctx context.Context, score *scoredb.Score) {
	payload, err := json.Marshal(scoreevents.ScoreRecordedPayload{
		PlayerID:   score.PlayerID.String(),
		CourseID:   score.CourseID,
		Hole:       score.Hole,
		Gross:      score.Gross,
		RecordedAt: score.RecordedAt,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal score.recorded payload", slog.Any("error", err))
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(scoreevents.TopicScoreRecorded, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish score.recorded", slog.Any("error", err))
	}
}

// RecentScores returns the newest scores, clamped to a sane window.
func (s *ScoreService) RecentScores(ctx context.Context, limit int) ([]scoredb.Score, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repo.RecentScores(ctx, limit)
}

// PlayerCourseScores returns one player's scores on one course.
func (s *ScoreService) PlayerCourseScores(ctx context.Context, playerID uuid.UUID, courseID int64) ([]scoredb.Score, error) {
	return s.repo.PlayerCourseScores(ctx, playerID, courseID)
}
