package validator

import (
	"reflect"

	"github.com/dmitrymomot/precond/pkg/errkind"
)

// InstanceOf fails unless value is assignable to expected. For interface
// types this means value implements it. Absent values fail. A present
// optional.Value is judged by what it holds.
func InstanceOf(value any, expected reflect.Type, name string, kind errkind.Kind) error {
	value = unwrap(value)
	if isAbsent(value) || !isInstance(value, expected) {
		return fail(kind, name, "should be an instance of "+typeName(expected))
	}
	return nil
}

// InstanceOfType is InstanceOf with the expected type given as a type parameter.
func InstanceOfType[T any](value any, name string, kind errkind.Kind) error {
	return InstanceOf(value, reflect.TypeFor[T](), name, kind)
}

// NullOrInstanceOf fails when value is present and not assignable to expected.
func NullOrInstanceOf(value any, expected reflect.Type, name string, kind errkind.Kind) error {
	value = unwrap(value)
	if !isAbsent(value) && !isInstance(value, expected) {
		return fail(kind, name, "should be null or an instance of "+typeName(expected))
	}
	return nil
}

// NullOrInstanceOfType is NullOrInstanceOf with the expected type given as a
// type parameter.
func NullOrInstanceOfType[T any](value any, name string, kind errkind.Kind) error {
	return NullOrInstanceOf(value, reflect.TypeFor[T](), name, kind)
}

func isInstance(value any, expected reflect.Type) bool {
	if expected == nil {
		return false
	}
	return reflect.TypeOf(value).AssignableTo(expected)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
