package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/precond/pkg/errkind"
)

// Negative fails unless value < 0.
func Negative[T Numeric](value T, name string, kind errkind.Kind) error {
	if value >= 0 {
		return fail(kind, name, "should be negative")
	}
	return nil
}

// Positive fails unless value > 0.
func Positive[T Numeric](value T, name string, kind errkind.Kind) error {
	if value <= 0 {
		return fail(kind, name, "should be positive")
	}
	return nil
}

// NotNegative fails when value < 0.
func NotNegative[T Numeric](value T, name string, kind errkind.Kind) error {
	if value < 0 {
		return fail(kind, name, "should be not negative")
	}
	return nil
}

// NotPositive fails when value > 0.
func NotPositive[T Numeric](value T, name string, kind errkind.Kind) error {
	if value > 0 {
		return fail(kind, name, "should be not positive")
	}
	return nil
}

// NotZero fails when value == 0.
func NotZero[T Numeric](value T, name string, kind errkind.Kind) error {
	if value == 0 {
		return fail(kind, name, "should not be equal to 0")
	}
	return nil
}

// GreaterThan fails unless value > bound, or value >= bound when inclusive.
func GreaterThan[T Numeric](value, bound T, inclusive bool, name string, kind errkind.Kind) error {
	if inclusive {
		if value < bound {
			return fail(kind, name, "should be greater than or equal to "+formatBound(bound))
		}
		return nil
	}
	if value <= bound {
		return fail(kind, name, "should be greater than "+formatBound(bound))
	}
	return nil
}

// LessThan fails unless value < bound, or value <= bound when inclusive.
func LessThan[T Numeric](value, bound T, inclusive bool, name string, kind errkind.Kind) error {
	if inclusive {
		if value > bound {
			return fail(kind, name, "should be less than or equal to "+formatBound(bound))
		}
		return nil
	}
	if value >= bound {
		return fail(kind, name, "should be less than "+formatBound(bound))
	}
	return nil
}

// InRange fails unless value lies between from and to. Each bound is
// inclusive or exclusive on its own; the message renders them as
// "[" / "(" and "]" / ")".
func InRange[T Numeric](value, from, to T, fromInclusive, toInclusive bool, name string, kind errkind.Kind) error {
	valid := value > from
	if fromInclusive {
		valid = value >= from
	}
	if valid {
		if toInclusive {
			valid = value <= to
		} else {
			valid = value < to
		}
	}
	if valid {
		return nil
	}

	open, closing := "(", ")"
	if fromInclusive {
		open = "["
	}
	if toInclusive {
		closing = "]"
	}
	return fail(kind, name, fmt.Sprintf("should be in the range %s%s, %s%s", open, formatBound(from), formatBound(to), closing))
}

// formatBound renders integers as is and floats with at least one decimal
// place, so a float bound of 1 reads "1.0".
func formatBound[T Numeric](v T) string {
	var f float64
	switch x := any(v).(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	default:
		return fmt.Sprint(v)
	}
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
