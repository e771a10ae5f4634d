package highlightsservice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/dustin/go-humanize"

	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
	scoreevents "github.com/duffers-cup/clubhouse/app/modules/score/events"
	scoredb "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/internal/golf"
)

// scanWindow is how many recent scores feed the highlights derivation; it
// matches the engine's own look-back bound.
const scanWindow = 100

// ScoreSource is the slice of the score repository the feed needs.
type ScoreSource interface {
	RecentScores(ctx context.Context, limit int) ([]scoredb.Score, error)
}

// CourseCatalog is the slice of the course repository the feed needs.
type CourseCatalog interface {
	ListCourses(ctx context.Context) ([]golf.Course, error)
}

// PlayerDirectory is the slice of the player repository the feed needs.
type PlayerDirectory interface {
	ListPlayers(ctx context.Context) ([]playerdb.Player, error)
}

// FeedItem is one rendered entry of the live highlights feed.
type FeedItem struct {
	Type       golf.HighlightType `json:"type"`
	PlayerID   string             `json:"player_id"`
	PlayerName string             `json:"player_name,omitempty"`
	Hole       int                `json:"hole"`
	Message    string             `json:"message"`
	ScoredAt   time.Time          `json:"scored_at"`
}

// HighlightsService derives the live feed from recent scores. The feed is
// recomputed from scratch on every rebuild; a small TTL cache plus
// score.recorded invalidation keeps refresh traffic off the database.
type HighlightsService struct {
	scores  ScoreSource
	courses CourseCatalog
	players PlayerDirectory
	logger  *slog.Logger
	ttl     time.Duration
	now     func() time.Time
	ago     func(time.Time) string

	mu       sync.Mutex
	cached   []FeedItem
	cachedAt time.Time
	stale    bool
}

// NewHighlightsService creates a new HighlightsService.
func NewHighlightsService(scores ScoreSource, courses CourseCatalog, players PlayerDirectory, ttl time.Duration, logger *slog.Logger) *HighlightsService {
	return &HighlightsService{
		scores:  scores,
		courses: courses,
		players: players,
		logger:  logger,
		ttl:     ttl,
		now:     time.Now,
		ago:     humanize.Time,
		stale:   true,
	}
}

// Feed returns the current highlights feed, rebuilding it when the cache is
// stale or past its TTL.
func (s *HighlightsService) Feed(ctx context.Context) ([]FeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stale && s.now().Sub(s.cachedAt) < s.ttl {
		return s.cached, nil
	}

	items, err := s.rebuild(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = items
	s.cachedAt = s.now()
	s.stale = false
	return items, nil
}

// Invalidate marks the cached feed stale. Called when a score is recorded.
func (s *HighlightsService) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

func (s *HighlightsService) rebuild(ctx context.Context) ([]FeedItem, error) {
	recent, err := s.scores.RecentScores(ctx, scanWindow)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID.String()] = p.Name
	}

	events := golf.DeriveHighlights(scoredb.ToGolfEntries(recent), courses, s.ago)
	items := make([]FeedItem, 0, len(events))
	for _, ev := range events {
		items = append(items, FeedItem{
			Type:       ev.Type,
			PlayerID:   ev.PlayerID,
			PlayerName: names[ev.PlayerID],
			Hole:       ev.Hole,
			Message:    ev.Message,
			ScoredAt:   ev.ScoredAt,
		})
	}
	s.logger.DebugContext(ctx, "highlights feed rebuilt",
		slog.Int("scores", len(recent)),
		slog.Int("events", len(items)),
	)
	return items, nil
}

// Run subscribes to score.recorded and invalidates the cached feed on every
// event. It blocks until the subscription channel closes or ctx is done.
func (s *HighlightsService) Run(ctx context.Context, subscriber message.Subscriber) error {
	messages, err := subscriber.Subscribe(ctx, scoreevents.TopicScoreRecorded)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			s.Invalidate()
			msg.Ack()
		}
	}
}
