package step

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when a direction string or value is not
// one of the four supported directions.
var ErrInvalidDirection = errors.New("<direction> must be one of 'top', 'up', 'down', or 'bottom'")

// Direction is the requested movement through the candidate set.
type Direction int

const (
	// Bottom jumps to the smallest candidate.
	Bottom Direction = iota
	// Down moves to the nearest smaller candidate.
	Down
	// Up moves to the nearest greater candidate.
	Up
	// Top jumps to the largest candidate.
	Top
)

var directionNames = map[string]Direction{
	"bottom": Bottom,
	"down":   Down,
	"up":     Up,
	"top":    Top,
}

// ParseDirection converts the command-line spelling of a direction. The match
// is exact and case-sensitive.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionNames[s]
	if !ok {
		return 0, fmt.Errorf("invalid direction %q: %w", s, ErrInvalidDirection)
	}
	return d, nil
}

// String returns the command-line spelling of the direction.
func (d Direction) String() string {
	switch d {
	case Bottom:
		return "bottom"
	case Down:
		return "down"
	case Up:
		return "up"
	case Top:
		return "top"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
