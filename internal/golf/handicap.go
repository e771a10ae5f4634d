package golf

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a caller hands the engine malformed
// numeric parameters. Callers are expected to validate request input before
// invoking the engine, so hitting this indicates bad reference data rather
// than bad user input.
var ErrInvalidInput = errors.New("invalid input")

// CourseHandicap converts a player's handicap index into the integer course
// handicap for a given tee using the USGA formula:
//
//	round(index × slope / 113 + (rating − par))
//
// Rounding is half away from zero. A zero index means the player has no
// established handicap and always yields 0.
func CourseHandicap(index, rating, slope float64, par int) (int, error) {
	if !isFinitePositive(rating) {
		return 0, fmt.Errorf("course rating %v: %w", rating, ErrInvalidInput)
	}
	if !isFinitePositive(slope) {
		return 0, fmt.Errorf("slope rating %v: %w", slope, ErrInvalidInput)
	}
	if index == 0 {
		return 0, nil
	}
	raw := index*slope/113 + (rating - float64(par))
	return int(math.Round(raw)), nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
