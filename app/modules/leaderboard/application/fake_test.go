package leaderboardservice

import (
	"context"

	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
	scoredb "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/internal/golf"
)

// FakePlayerDirectory serves a fixed player list.
type FakePlayerDirectory struct {
	Players []playerdb.Player
	Err     error
}

func (f *FakePlayerDirectory) ListPlayers(context.Context) ([]playerdb.Player, error) {
	return f.Players, f.Err
}

// FakeCourseCatalog serves a fixed course list.
type FakeCourseCatalog struct {
	Courses []golf.Course
	Err     error
}

func (f *FakeCourseCatalog) ListCourses(context.Context) ([]golf.Course, error) {
	return f.Courses, f.Err
}

// FakeScoreSource serves a fixed score list.
type FakeScoreSource struct {
	Scores []scoredb.Score
	Err    error
}

func (f *FakeScoreSource) AllScores(context.Context) ([]scoredb.Score, error) {
	return f.Scores, f.Err
}
