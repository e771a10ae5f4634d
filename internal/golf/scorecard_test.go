package golf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScorecards(t *testing.T) {
	now := time.Now()
	entry := func(player string, course int64, hole, gross int) ScoreEntry {
		return ScoreEntry{PlayerID: player, CourseID: course, Hole: hole, Gross: gross, RecordedAt: now}
	}

	t.Run("groups by player and course in insertion order", func(t *testing.T) {
		cards := BuildScorecards([]ScoreEntry{
			entry("amy", 1, 1, 4),
			entry("ben", 1, 1, 5),
			entry("amy", 2, 1, 3),
			entry("amy", 1, 2, 6),
		})

		require.Len(t, cards, 3)
		assert.Equal(t, "amy", cards[0].PlayerID)
		assert.Equal(t, int64(1), cards[0].CourseID)
		assert.Equal(t, "ben", cards[1].PlayerID)
		assert.Equal(t, int64(2), cards[2].CourseID)

		assert.Equal(t, 2, cards[0].HolesPlayed)
		assert.Equal(t, 10, cards[0].TotalGross)
		assert.Equal(t, map[int]int{1: 4, 2: 6}, cards[0].Gross)
	})

	t.Run("first score for a hole wins", func(t *testing.T) {
		cards := BuildScorecards([]ScoreEntry{
			entry("amy", 1, 7, 4),
			entry("amy", 1, 7, 9),
		})

		require.Len(t, cards, 1)
		assert.Equal(t, 1, cards[0].HolesPlayed)
		assert.Equal(t, 4, cards[0].Gross[7])
		assert.Equal(t, 4, cards[0].TotalGross)
	})

	t.Run("same hole on different courses is not a duplicate", func(t *testing.T) {
		cards := BuildScorecards([]ScoreEntry{
			entry("amy", 1, 7, 4),
			entry("amy", 2, 7, 5),
		})

		require.Len(t, cards, 2)
		assert.Equal(t, 4, cards[0].Gross[7])
		assert.Equal(t, 5, cards[1].Gross[7])
	})

	t.Run("empty input yields no cards", func(t *testing.T) {
		assert.Empty(t, BuildScorecards(nil))
	})
}
