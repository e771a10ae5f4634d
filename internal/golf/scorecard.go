package golf

// Scorecard is the raw gross-score view of one player's round on one
// course, used by the leaderboard and admin displays.
type Scorecard struct {
	PlayerID    string      `json:"player_id"`
	CourseID    int64       `json:"course_id"`
	HolesPlayed int         `json:"holes_played"`
	Gross       map[int]int `json:"gross"`
	TotalGross  int         `json:"total_gross"`
}

// BuildScorecards groups score entries by (player, course) and materializes
// one scorecard per group, ordered by first appearance in the input. Within
// a group the first score seen for a hole wins; the score store upserts by
// hole so duplicates only occur in legacy exports, and keeping the first
// entry keeps the display stable across rebuilds.
func BuildScorecards(entries []ScoreEntry) []Scorecard {
	type groupKey struct {
		playerID string
		courseID int64
	}

	index := make(map[groupKey]int)
	cards := make([]Scorecard, 0)
	for _, e := range entries {
		key := groupKey{e.PlayerID, e.CourseID}
		i, ok := index[key]
		if !ok {
			i = len(cards)
			index[key] = i
			cards = append(cards, Scorecard{
				PlayerID: e.PlayerID,
				CourseID: e.CourseID,
				Gross:    make(map[int]int),
			})
		}
		if _, seen := cards[i].Gross[e.Hole]; seen {
			continue
		}
		cards[i].Gross[e.Hole] = e.Gross
		cards[i].HolesPlayed++
		cards[i].TotalGross += e.Gross
	}
	return cards
}
