// Package numeric defines the scalar types a step sequence can be expressed
// in, along with their strict text parsing and formatting rules.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidType is returned for an unknown value type name.
var ErrInvalidType = errors.New("value type must be one of `f32` or `u32`")

// ErrNaN is returned when a floating point input is not a number.
var ErrNaN = errors.New("NaN is not an orderable value")

// Type selects the numeric type used for both the current value and the
// candidate values.
type Type string

const (
	Float32 Type = "f32"
	Uint32  Type = "u32"
)

// ParseType validates a value type name.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Float32, Uint32:
		return t, nil
	default:
		return "", fmt.Errorf("invalid value type %q: %w", s, ErrInvalidType)
	}
}

// Describe returns the phrase used in messages to say what a value of this
// type must look like.
func (t Type) Describe() string {
	switch t {
	case Float32:
		return "a floating point number"
	case Uint32:
		return "a positive integer"
	default:
		return "a number"
	}
}

// ParseFloat32 parses decimal or scientific notation (and infinities) into a
// float32. Magnitudes beyond the float32 range become ±Inf. Hexadecimal
// mantissas are rejected, and so is NaN since it cannot be ordered against
// other values.
func ParseFloat32(s string) (float32, error) {
	if isHexFloat(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("parsing %q: %w", s, ErrNaN)
	}
	return float32(f), nil
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// ParseUint32 parses a base-10 non-negative integer. A single leading '+'
// is accepted.
func ParseUint32(s string) (uint32, error) {
	digits := strings.TrimPrefix(s, "+")
	if digits != s && strings.HasPrefix(digits, "+") {
		return 0, &strconv.NumError{Func: "ParseUint", Num: s, Err: strconv.ErrSyntax}
	}
	u, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(u), nil
}

// FormatFloat32 renders f using the fewest digits that round-trip, without an
// exponent: 5 prints as "5" and 2.5 as "2.5".
func FormatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// FormatUint32 renders u in base 10.
func FormatUint32(u uint32) string {
	return strconv.FormatUint(uint64(u), 10)
}
