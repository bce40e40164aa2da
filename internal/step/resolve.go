package step

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrEmptyCandidates is returned when there is nothing to step to.
var ErrEmptyCandidates = errors.New("empty candidate set")

// Resolve returns the candidate reached by moving from current in the given
// direction. Candidates may be in any order and may repeat; the slice is not
// modified. The result is always one of the candidates.
//
// Up and Down saturate: when no candidate lies strictly beyond current, the
// largest (Up) or smallest (Down) candidate is returned.
func Resolve[T cmp.Ordered](direction Direction, current T, candidates []T) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, ErrEmptyCandidates
	}

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	switch direction {
	case Bottom:
		return sorted[0], nil
	case Down:
		return closestDown(sorted, current), nil
	case Up:
		return closestUp(sorted, current), nil
	case Top:
		return sorted[len(sorted)-1], nil
	default:
		return zero, fmt.Errorf("%s: %w", direction, ErrInvalidDirection)
	}
}

// closestUp expects sorted to be ascending and non-empty.
func closestUp[T cmp.Ordered](sorted []T, current T) T {
	for _, v := range sorted {
		if current < v {
			return v
		}
	}
	return sorted[len(sorted)-1]
}

// closestDown expects sorted to be ascending and non-empty.
func closestDown[T cmp.Ordered](sorted []T, current T) T {
	for i := len(sorted) - 1; i >= 0; i-- {
		if current > sorted[i] {
			return sorted[i]
		}
	}
	return sorted[0]
}
