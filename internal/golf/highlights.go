package golf

import (
	"fmt"
	"time"
)

// HighlightType classifies a feed event.
type HighlightType string

const (
	HighlightEagle    HighlightType = "eagle"
	HighlightBirdie   HighlightType = "birdie"
	HighlightStreak   HighlightType = "streak"
	HighlightBlowup   HighlightType = "blowup"
	HighlightStandard HighlightType = "standard"
)

// HighlightEvent is one entry in the live feed. Events are derived on
// demand and never persisted.
type HighlightEvent struct {
	Type     HighlightType `json:"type"`
	PlayerID string        `json:"player_id"`
	Hole     int           `json:"hole"`
	Message  string        `json:"message"`
	ScoredAt time.Time     `json:"scored_at"`
}

const (
	// highlightWindow bounds how far back the scan looks so that streak
	// detection near the cut-off still has its two look-back neighbors.
	highlightWindow = 100
	// highlightFeedLimit is how many of the newest scores become feed
	// candidates.
	highlightFeedLimit = 20
)

// defaultPar stands in when a hole has no reference data.
const defaultPar = 4

// DeriveHighlights scans recent scores, newest first, and emits feed events
// for the notable ones: streaks of birdie-or-better, bounce-backs after a
// double bogey or worse, eagles, birdies, and blow-ups. Pars and single
// bogeys stay silent.
//
// Streak detection looks at each player's own previous one or two holes, so
// interleaved scores from other players never break a streak. The ago
// function renders a recorded-at timestamp as relative display text
// ("4 minutes ago"); pass nil to omit it from messages.
func DeriveHighlights(recent []ScoreEntry, courses []Course, ago func(time.Time) string) []HighlightEvent {
	window := recent
	if len(window) > highlightWindow {
		window = window[:highlightWindow]
	}

	pars := make(map[int64]map[int]int, len(courses))
	for _, c := range courses {
		holes := make(map[int]int, len(c.Holes))
		for _, h := range c.Holes {
			holes[h.Number] = h.Par
		}
		pars[c.ID] = holes
	}

	// Per-player subsequences, preserving the window's newest-first order.
	byPlayer := make(map[string][]ScoreEntry)
	playerPos := make([]int, len(window))
	for i, e := range window {
		playerPos[i] = len(byPlayer[e.PlayerID])
		byPlayer[e.PlayerID] = append(byPlayer[e.PlayerID], e)
	}

	diffOf := func(e ScoreEntry) int {
		par := defaultPar
		if holes, ok := pars[e.CourseID]; ok {
			if p, ok := holes[e.Hole]; ok {
				par = p
			}
		}
		return e.Gross - par
	}

	limit := len(window)
	if limit > highlightFeedLimit {
		limit = highlightFeedLimit
	}

	events := make([]HighlightEvent, 0, limit)
	for i := 0; i < limit; i++ {
		e := window[i]
		if _, ok := pars[e.CourseID]; !ok {
			continue
		}

		diff := diffOf(e)
		seq := byPlayer[e.PlayerID]
		j := playerPos[i]

		prev1, hasPrev1 := 0, false
		if j+1 < len(seq) {
			prev1, hasPrev1 = diffOf(seq[j+1]), true
		}
		prev2, hasPrev2 := 0, false
		if j+2 < len(seq) {
			prev2, hasPrev2 = diffOf(seq[j+2]), true
		}

		var evType HighlightType
		var msg string
		switch {
		case diff <= -1 && hasPrev1 && hasPrev2 && prev1 <= -1 && prev2 <= -1:
			evType = HighlightStreak
			msg = fmt.Sprintf("3 birdies or better in a row through hole %d", e.Hole)
		case diff <= -1 && hasPrev1 && prev1 <= -1:
			evType = HighlightStreak
			msg = fmt.Sprintf("Back-to-back birdies through hole %d", e.Hole)
		case diff <= -1 && hasPrev1 && prev1 >= 2:
			evType = HighlightStreak
			msg = fmt.Sprintf("Bounced back on hole %d after a rough one", e.Hole)
		case diff <= -2:
			evType = HighlightEagle
			msg = fmt.Sprintf("Eagle on hole %d", e.Hole)
		case diff == -1:
			evType = HighlightBirdie
			msg = fmt.Sprintf("Birdie on hole %d", e.Hole)
		case diff >= 3:
			evType = HighlightBlowup
			msg = fmt.Sprintf("Blow-up on hole %d (+%d)", e.Hole, diff)
		default:
			continue
		}

		if ago != nil {
			msg = fmt.Sprintf("%s (%s)", msg, ago(e.RecordedAt))
		}
		events = append(events, HighlightEvent{
			Type:     evType,
			PlayerID: e.PlayerID,
			Hole:     e.Hole,
			Message:  msg,
			ScoredAt: e.RecordedAt,
		})
	}
	return events
}
