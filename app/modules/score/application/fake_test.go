package scoreservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	scoredb "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories"
)

// ------------------------
// Fake Score Repo
// ------------------------

// FakeScoreRepository provides a programmable stub for the scoredb.Repository interface.
type FakeScoreRepository struct {
	trace []string

	UpsertScoreFunc        func(ctx context.Context, score *scoredb.Score) error
	RecentScoresFunc       func(ctx context.Context, limit int) ([]scoredb.Score, error)
	PlayerCourseScoresFunc func(ctx context.Context, playerID uuid.UUID, courseID int64) ([]scoredb.Score, error)
	AllScoresFunc          func(ctx context.Context) ([]scoredb.Score, error)

	LastUpserted *scoredb.Score
	LastLimit    int
}

// NewFakeScoreRepository initializes a new FakeScoreRepository with an empty trace.
func NewFakeScoreRepository() *FakeScoreRepository {
	return &FakeScoreRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScoreRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoreRepository) UpsertScore(ctx context.Context, score *scoredb.Score) error {
	f.record("UpsertScore")
	f.LastUpserted = score
	if f.UpsertScoreFunc != nil {
		return f.UpsertScoreFunc(ctx, score)
	}
	return nil
}

func (f *FakeScoreRepository) RecentScores(ctx context.Context, limit int) ([]scoredb.Score, error) {
	f.record("RecentScores")
	f.LastLimit = limit
	if f.RecentScoresFunc != nil {
		return f.RecentScoresFunc(ctx, limit)
	}
	return nil, nil
}

func (f *FakeScoreRepository) PlayerCourseScores(ctx context.Context, playerID uuid.UUID, courseID int64) ([]scoredb.Score, error) {
	f.record("PlayerCourseScores")
	if f.PlayerCourseScoresFunc != nil {
		return f.PlayerCourseScoresFunc(ctx, playerID, courseID)
	}
	return nil, nil
}

func (f *FakeScoreRepository) AllScores(ctx context.Context) ([]scoredb.Score, error) {
	f.record("AllScores")
	if f.AllScoresFunc != nil {
		return f.AllScoresFunc(ctx)
	}
	return nil, nil
}

// ------------------------
// Fake Publisher
// ------------------------

// FakePublisher captures published messages per topic.
type FakePublisher struct {
	Published   map[string][]*message.Message
	PublishFunc func(topic string, messages ...*message.Message) error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{Published: map[string][]*message.Message{}}
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Published[topic] = append(f.Published[topic], messages...)
	if f.PublishFunc != nil {
		return f.PublishFunc(topic, messages...)
	}
	return nil
}

func (f *FakePublisher) Close() error { return nil }
