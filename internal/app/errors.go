package app

import "errors"

var (
	// ErrInvalidCurrentValue is returned when the current value does not
	// parse as the selected value type.
	ErrInvalidCurrentValue = errors.New("invalid current value")
	// ErrConfigParse is returned when a candidate entry does not parse as the
	// selected value type.
	ErrConfigParse = errors.New("invalid candidate value")
)
