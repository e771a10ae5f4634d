package golf

import (
	"fmt"
	"sort"
)

// AllocateStrokes distributes a course handicap across the given holes.
// Holes are ranked by stroke index (hardest first, ties broken by hole
// number) and strokes are handed out one per hole in ranking order,
// wrapping around for handicaps above the hole count. A handicap of 18 on
// an 18-hole course gives every hole one stroke; 20 gives the two hardest
// holes a second one.
//
// Non-positive handicaps allocate nothing: plus handicaps are not
// distributed as per-hole subtractions in this system.
func AllocateStrokes(courseHandicap int, holes []Hole) (StrokeAllocation, error) {
	if len(holes) == 0 {
		return nil, fmt.Errorf("allocate strokes: no holes: %w", ErrInvalidInput)
	}

	alloc := make(StrokeAllocation, len(holes))
	for _, h := range holes {
		alloc[h.Number] = 0
	}
	if courseHandicap <= 0 {
		return alloc, nil
	}

	ranked := make([]Hole, len(holes))
	copy(ranked, holes)
	sort.Slice(ranked, func(i, j int) bool {
		ri, rj := ranked[i].ranking(), ranked[j].ranking()
		if ri != rj {
			return ri < rj
		}
		return ranked[i].Number < ranked[j].Number
	})

	remaining := courseHandicap
	for remaining > 0 {
		for _, h := range ranked {
			if remaining == 0 {
				break
			}
			alloc[h.Number]++
			remaining--
		}
	}
	return alloc, nil
}
