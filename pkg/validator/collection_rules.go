package validator

import (
	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/optional"
)

// NotEmptySlice fails when the slice has no elements. Absent slices pass.
func NotEmptySlice[T any](value optional.Value[[]T], name string, kind errkind.Kind) error {
	if s, ok := value.Get(); ok && len(s) == 0 {
		return fail(kind, name, "should not be empty")
	}
	return nil
}

// NotNullNorEmptySlice combines NotNull and NotEmptySlice.
func NotNullNorEmptySlice[T any](value optional.Value[[]T], name string, kind errkind.Kind) error {
	if err := NotNull(value, name, kind); err != nil {
		return err
	}
	return NotEmptySlice(value, name, kind)
}

// NoNullElements fails when any element is absent. Absent slices pass.
func NoNullElements[T any](value optional.Value[[]T], name string, kind errkind.Kind) error {
	s, ok := value.Get()
	if !ok {
		return nil
	}
	for _, el := range s {
		if isAbsent(el) {
			return fail(kind, name, "should not contain null")
		}
	}
	return nil
}

// NoEmptyElements fails when any element is an empty string (optionally
// after trimming), an empty slice or array, or a map. Absent slices pass.
//
// Map elements count as empty whatever their size, unlike NoEmptyKeys and
// NoEmptyValues which look at the number of entries. Elements of other types
// are never empty.
func NoEmptyElements[T any](value optional.Value[[]T], trim bool, name string, kind errkind.Kind) error {
	s, ok := value.Get()
	if !ok {
		return nil
	}
	for _, el := range s {
		if classify(el).empty(trim, mappingAlwaysEmpty) {
			return fail(kind, name, "should not contain empty elements")
		}
	}
	return nil
}
