package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
	scoredb "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/internal/golf"
)

// PlayerDirectory is the slice of the player repository the leaderboard
// needs.
type PlayerDirectory interface {
	ListPlayers(ctx context.Context) ([]playerdb.Player, error)
}

// CourseCatalog is the slice of the course repository the leaderboard needs.
type CourseCatalog interface {
	ListCourses(ctx context.Context) ([]golf.Course, error)
}

// ScoreSource is the slice of the score repository the leaderboard needs.
type ScoreSource interface {
	AllScores(ctx context.Context) ([]scoredb.Score, error)
}

// CourseStanding is one player's result on one course.
type CourseStanding struct {
	CourseID       int64  `json:"course_id"`
	CourseName     string `json:"course_name"`
	Tee            string `json:"tee,omitempty"`
	CourseHandicap int    `json:"course_handicap"`
	Points         int    `json:"points"`
	Gross          int    `json:"gross"`
	HolesPlayed    int    `json:"holes_played"`
}

// Standing is one row of the trip leaderboard.
type Standing struct {
	PlayerID      uuid.UUID        `json:"player_id"`
	PlayerName    string           `json:"player_name"`
	HandicapIndex float64          `json:"handicap_index"`
	TotalPoints   int              `json:"total_points"`
	TotalGross    int              `json:"total_gross"`
	HolesPlayed   int              `json:"holes_played"`
	Courses       []CourseStanding `json:"courses"`
}

// PlayerScorecard is the detailed hole-by-hole view for one player on one
// course.
type PlayerScorecard struct {
	CourseID       int64            `json:"course_id"`
	CourseName     string           `json:"course_name"`
	CourseHandicap int              `json:"course_handicap"`
	Round          golf.RoundResult `json:"round"`
	Card           golf.Scorecard   `json:"card"`
}

// LeaderboardService assembles leaderboard and scorecard read models from
// the other modules' stores and the scoring engine.
type LeaderboardService struct {
	players PlayerDirectory
	courses CourseCatalog
	scores  ScoreSource
	logger  *slog.Logger
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(players PlayerDirectory, courses CourseCatalog, scores ScoreSource, logger *slog.Logger) *LeaderboardService {
	return &LeaderboardService{players: players, courses: courses, scores: scores, logger: logger}
}

// Standings computes the live Stableford leaderboard across every course of
// the trip. Players with no scores yet still appear, with zero totals.
func (s *LeaderboardService) Standings(ctx context.Context) ([]Standing, error) {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.scores.AllScores(ctx)
	if err != nil {
		return nil, err
	}

	entriesByPlayer := make(map[uuid.UUID]map[int64][]golf.ScoreEntry)
	for i := range scores {
		byCourse, ok := entriesByPlayer[scores[i].PlayerID]
		if !ok {
			byCourse = make(map[int64][]golf.ScoreEntry)
			entriesByPlayer[scores[i].PlayerID] = byCourse
		}
		byCourse[scores[i].CourseID] = append(byCourse[scores[i].CourseID], scores[i].ToGolf())
	}

	standings := make([]Standing, 0, len(players))
	for _, p := range players {
		st := Standing{
			PlayerID:      p.ID,
			PlayerName:    p.Name,
			HandicapIndex: p.HandicapIndex,
			Courses:       []CourseStanding{},
		}
		for _, c := range courses {
			entries := entriesByPlayer[p.ID][c.ID]
			if len(entries) == 0 {
				continue
			}
			cs, err := s.scoreCourse(p, c, entries)
			if err != nil {
				// Bad reference data for one course degrades that course,
				// not the whole board.
				s.logger.WarnContext(ctx, "skipping course in standings",
					slog.Int64("course_id", c.ID),
					slog.Any("error", err),
				)
				continue
			}
			st.Courses = append(st.Courses, cs)
			st.TotalPoints += cs.Points
			st.TotalGross += cs.Gross
			st.HolesPlayed += cs.HolesPlayed
		}
		standings = append(standings, st)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		if standings[i].TotalGross != standings[j].TotalGross {
			return standings[i].TotalGross < standings[j].TotalGross
		}
		return standings[i].PlayerName < standings[j].PlayerName
	})
	return standings, nil
}

func (s *LeaderboardService) scoreCourse(p playerdb.Player, c golf.Course, entries []golf.ScoreEntry) (CourseStanding, error) {
	handicap, teeName, err := courseHandicapFor(p.HandicapIndex, c)
	if err != nil {
		return CourseStanding{}, err
	}

	cs := CourseStanding{
		CourseID:       c.ID,
		CourseName:     c.Name,
		Tee:            teeName,
		CourseHandicap: handicap,
	}
	for _, e := range entries {
		cs.Gross += e.Gross
		cs.HolesPlayed++
	}

	// A course without hole detail still counts gross; there is nothing to
	// allocate strokes against.
	if len(c.Holes) == 0 {
		return cs, nil
	}
	alloc, err := golf.AllocateStrokes(handicap, c.Holes)
	if err != nil {
		return CourseStanding{}, err
	}
	round := golf.ScoreRound(entries, c, alloc)
	cs.Points = round.TotalPoints
	return cs, nil
}

// courseHandicapFor picks the course's first tee and computes the player's
// course handicap against it. Courses with no tee data fall back to the
// course par at neutral slope, which reduces the formula to the bare index.
func courseHandicapFor(index float64, c golf.Course) (int, string, error) {
	rating, slope, par := float64(c.Par), 113.0, c.Par
	teeName := ""
	if len(c.Tees) > 0 {
		tee := c.Tees[0]
		rating, slope, teeName = tee.Rating, tee.Slope, tee.Name
		if tee.Par > 0 {
			par = tee.Par
		}
	}
	handicap, err := golf.CourseHandicap(index, rating, slope, par)
	if err != nil {
		return 0, "", fmt.Errorf("course %q: %w", c.Name, err)
	}
	return handicap, teeName, nil
}

// AdminScorecards returns the raw gross scorecard for every (player,
// course) pair, in first-score order.
func (s *LeaderboardService) AdminScorecards(ctx context.Context) ([]golf.Scorecard, error) {
	scores, err := s.scores.AllScores(ctx)
	if err != nil {
		return nil, err
	}
	return golf.BuildScorecards(scoredb.ToGolfEntries(scores)), nil
}

// PlayerScorecards returns the detailed hole-by-hole view for one player
// across every course they have scores on.
func (s *LeaderboardService) PlayerScorecards(ctx context.Context, playerID uuid.UUID) ([]PlayerScorecard, error) {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	var player *playerdb.Player
	for i := range players {
		if players[i].ID == playerID {
			player = &players[i]
			break
		}
	}
	if player == nil {
		return nil, fmt.Errorf("player %s: %w", playerID, playerdb.ErrPlayerNotFound)
	}

	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.scores.AllScores(ctx)
	if err != nil {
		return nil, err
	}

	var own []golf.ScoreEntry
	for i := range scores {
		if scores[i].PlayerID == playerID {
			own = append(own, scores[i].ToGolf())
		}
	}

	cards := golf.BuildScorecards(own)
	out := make([]PlayerScorecard, 0, len(cards))
	for _, card := range cards {
		var course golf.Course
		found := false
		for _, c := range courses {
			if c.ID == card.CourseID {
				course, found = c, true
				break
			}
		}
		if !found {
			continue
		}

		handicap, _, err := courseHandicapFor(player.HandicapIndex, course)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping course in scorecard",
				slog.Int64("course_id", course.ID),
				slog.Any("error", err),
			)
			continue
		}

		detail := PlayerScorecard{
			CourseID:       course.ID,
			CourseName:     course.Name,
			CourseHandicap: handicap,
			Card:           card,
		}
		if len(course.Holes) > 0 {
			alloc, err := golf.AllocateStrokes(handicap, course.Holes)
			if err == nil {
				var courseEntries []golf.ScoreEntry
				for _, e := range own {
					if e.CourseID == course.ID {
						courseEntries = append(courseEntries, e)
					}
				}
				detail.Round = golf.ScoreRound(courseEntries, course, alloc)
			}
		}
		out = append(out, detail)
	}
	return out, nil
}
