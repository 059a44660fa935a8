package validator

import (
	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/optional"
)

// NotEmptyMap fails when the map has no entries. Absent maps pass.
func NotEmptyMap[K comparable, V any](value optional.Value[map[K]V], name string, kind errkind.Kind) error {
	if m, ok := value.Get(); ok && len(m) == 0 {
		return fail(kind, name, "should not be empty")
	}
	return nil
}

// NotNullNorEmptyMap combines NotNull and NotEmptyMap.
func NotNullNorEmptyMap[K comparable, V any](value optional.Value[map[K]V], name string, kind errkind.Kind) error {
	if err := NotNull(value, name, kind); err != nil {
		return err
	}
	return NotEmptyMap(value, name, kind)
}

// NoNullKeys fails when any key is absent. Absent maps pass.
func NoNullKeys[K comparable, V any](value optional.Value[map[K]V], name string, kind errkind.Kind) error {
	m, ok := value.Get()
	if !ok {
		return nil
	}
	for k := range m {
		if isAbsent(k) {
			return fail(kind, name, "should not contain null key")
		}
	}
	return nil
}

// NoNullValues fails when any value is absent. Absent maps pass.
func NoNullValues[K comparable, V any](value optional.Value[map[K]V], name string, kind errkind.Kind) error {
	m, ok := value.Get()
	if !ok {
		return nil
	}
	for _, v := range m {
		if isAbsent(v) {
			return fail(kind, name, "should not contain null value")
		}
	}
	return nil
}

// NoEmptyKeys fails when any key is an empty string (optionally after
// trimming), an empty slice or array, or an empty map. Absent maps pass.
func NoEmptyKeys[K comparable, V any](value optional.Value[map[K]V], trim bool, name string, kind errkind.Kind) error {
	m, ok := value.Get()
	if !ok {
		return nil
	}
	for k := range m {
		if classify(k).empty(trim, mappingBySize) {
			return fail(kind, name, "should not contain empty keys")
		}
	}
	return nil
}

// NoEmptyValues fails when any value is an empty string (optionally after
// trimming), an empty slice or array, or an empty map. Absent maps pass.
func NoEmptyValues[K comparable, V any](value optional.Value[map[K]V], trim bool, name string, kind errkind.Kind) error {
	m, ok := value.Get()
	if !ok {
		return nil
	}
	for _, v := range m {
		if classify(v).empty(trim, mappingBySize) {
			return fail(kind, name, "should not contain empty values")
		}
	}
	return nil
}
