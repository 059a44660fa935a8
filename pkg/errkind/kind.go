package errkind

import "reflect"

// Kind describes an error type a caller wants produced on failure.
//
// New and Wrap may return nil when the kind cannot build an instance of that
// shape; Construct and ConstructWithCause turn that into a
// *NotConstructibleError.
type Kind interface {
	Name() string
	New(message string) error
	Wrap(message string, cause error) error
}

type definition[E error] struct {
	name   string
	newFn  func(string) E
	wrapFn func(string, error) E
}

// Define adapts typed constructors into a Kind. Either constructor may be nil
// when the error type has no such shape.
func Define[E error](name string, newFn func(message string) E, wrapFn func(message string, cause error) E) Kind {
	return definition[E]{name: name, newFn: newFn, wrapFn: wrapFn}
}

func (d definition[E]) Name() string { return d.name }

func (d definition[E]) New(message string) error {
	if d.newFn == nil {
		return nil
	}
	return nilIfEmpty(d.newFn(message))
}

func (d definition[E]) Wrap(message string, cause error) error {
	if d.wrapFn == nil {
		return nil
	}
	return nilIfEmpty(d.wrapFn(message, cause))
}

// Construct builds an instance of kind carrying message verbatim.
// The result is never nil.
func Construct(kind Kind, message string) error {
	if isNil(kind) {
		return &NotConstructibleError{Message: message, Reason: "kind is nil"}
	}
	if err := kind.New(message); !isNil(err) {
		return err
	}
	return &NotConstructibleError{
		Kind:    kind.Name(),
		Message: message,
		Reason:  "no (message) constructor",
	}
}

// ConstructWithCause builds an instance of kind carrying message verbatim and
// cause as its inner error. The result is never nil.
func ConstructWithCause(kind Kind, message string, cause error) error {
	if isNil(kind) {
		return &NotConstructibleError{Message: message, Cause: cause, Reason: "kind is nil"}
	}
	if err := kind.Wrap(message, cause); !isNil(err) {
		return err
	}
	return &NotConstructibleError{
		Kind:    kind.Name(),
		Message: message,
		Cause:   cause,
		Reason:  "no (message, cause) constructor",
	}
}

// nilIfEmpty turns a typed nil (e.g. (*MyError)(nil)) into an untyped nil so
// callers can compare against nil.
func nilIfEmpty[E error](e E) error {
	if isNil(e) {
		return nil
	}
	return e
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
