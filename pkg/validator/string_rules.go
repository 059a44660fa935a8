package validator

import (
	"strings"

	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/optional"
)

// NotNull fails when value is absent.
func NotNull(value any, name string, kind errkind.Kind) error {
	if isAbsent(value) {
		return fail(kind, name, "should not be null")
	}
	return nil
}

// NotEmpty fails when value is the empty string. Whitespace is not trimmed.
// Absent values pass.
func NotEmpty(value optional.Value[string], name string, kind errkind.Kind) error {
	if s, ok := value.Get(); ok && s == "" {
		return fail(kind, name, "should not be empty")
	}
	return nil
}

// NotEmptyTrimmed fails when value is empty after trimming whitespace.
// Absent values pass.
func NotEmptyTrimmed(value optional.Value[string], name string, kind errkind.Kind) error {
	if s, ok := value.Get(); ok && strings.TrimSpace(s) == "" {
		return fail(kind, name, "should not be empty (trimmed)")
	}
	return nil
}

// NotNullNorEmpty combines NotNull and NotEmpty.
func NotNullNorEmpty(value optional.Value[string], name string, kind errkind.Kind) error {
	if err := NotNull(value, name, kind); err != nil {
		return err
	}
	return NotEmpty(value, name, kind)
}

// NotNullNorEmptyTrimmed combines NotNull and NotEmptyTrimmed.
func NotNullNorEmptyTrimmed(value optional.Value[string], name string, kind errkind.Kind) error {
	if err := NotNull(value, name, kind); err != nil {
		return err
	}
	return NotEmptyTrimmed(value, name, kind)
}
