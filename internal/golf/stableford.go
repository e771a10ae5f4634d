package golf

// HoleResult is the scored outcome of a single hole.
type HoleResult struct {
	Hole    int `json:"hole"`
	Gross   int `json:"gross"`
	Par     int `json:"par"`
	Strokes int `json:"strokes"`
	Net     int `json:"net"`
	Points  int `json:"points"`
}

// RoundResult is a player's scored round on one course.
type RoundResult struct {
	TotalPoints int          `json:"total_points"`
	Holes       []HoleResult `json:"holes"`
}

// ScoreHole computes the net score and Stableford points for one hole.
// Points run from 5 (net albatross or better) down to 0 (net double bogey
// or worse); a net par is always worth exactly 2.
func ScoreHole(gross, par, strokesReceived int) HoleResult {
	net := gross - strokesReceived
	var points int
	switch diff := net - par; {
	case diff <= -3:
		points = 5
	case diff == -2:
		points = 4
	case diff == -1:
		points = 3
	case diff == 0:
		points = 2
	case diff == 1:
		points = 1
	default:
		points = 0
	}
	return HoleResult{Par: par, Gross: gross, Strokes: strokesReceived, Net: net, Points: points}
}

// ScoreRound scores a set of entries for one player against one course,
// using a previously computed stroke allocation. Entries referencing a hole
// the course data does not describe are skipped; partial and legacy course
// records are common enough that this is tolerance, not an error.
func ScoreRound(entries []ScoreEntry, course Course, alloc StrokeAllocation) RoundResult {
	pars := make(map[int]int, len(course.Holes))
	for _, h := range course.Holes {
		pars[h.Number] = h.Par
	}

	result := RoundResult{Holes: make([]HoleResult, 0, len(entries))}
	for _, e := range entries {
		par, ok := pars[e.Hole]
		if !ok {
			continue
		}
		hr := ScoreHole(e.Gross, par, alloc[e.Hole])
		hr.Hole = e.Hole
		result.Holes = append(result.Holes, hr)
		result.TotalPoints += hr.Points
	}
	return result
}
