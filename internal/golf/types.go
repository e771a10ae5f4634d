// Package golf implements the tournament scoring engine: USGA course
// handicaps, handicap stroke allocation, Stableford points, scorecard
// aggregation, and highlights derivation. Every function in this package is a
// pure transform over the data it is given; nothing here touches the
// database, the clock, or the network.
package golf

import "time"

// Tee describes one set of tee markers on a course.
type Tee struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Slope   float64 `json:"slope"`
	Par     int     `json:"par"`
	Yardage int     `json:"yardage,omitempty"`
}

// Hole is a single hole on a course. StrokeIndex ranks difficulty, 1 being
// the hardest; a zero StrokeIndex means the course data never assigned one
// and the hole number is used as the ranking instead.
type Hole struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	StrokeIndex int `json:"stroke_index,omitempty"`
	Yardage     int `json:"yardage,omitempty"`
}

// Course is the reference data the engine needs about a course. Par is kept
// separately from Holes because legacy course records carry a course-level
// par with no hole detail.
type Course struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Par   int    `json:"par"`
	Tees  []Tee  `json:"tees,omitempty"`
	Holes []Hole `json:"holes,omitempty"`
}

// ScoreEntry is one recorded gross score for one player on one hole.
type ScoreEntry struct {
	PlayerID   string    `json:"player_id"`
	CourseID   int64     `json:"course_id"`
	Hole       int       `json:"hole"`
	Gross      int       `json:"gross"`
	RecordedAt time.Time `json:"recorded_at"`
}

// StrokeAllocation maps hole number to handicap strokes received there. The
// values sum to the course handicap that produced the allocation.
type StrokeAllocation map[int]int

// ranking returns the stroke index used to order holes for allocation,
// falling back to the hole number when no index was assigned.
func (h Hole) ranking() int {
	if h.StrokeIndex > 0 {
		return h.StrokeIndex
	}
	return h.Number
}
