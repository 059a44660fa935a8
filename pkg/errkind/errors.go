package errkind

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConstructible is matched by every construction failure.
	ErrNotConstructible = errors.New("error kind is not constructible")

	// ErrNilKind is returned when registering a nil kind.
	ErrNilKind = errors.New("nil error kind")

	// ErrDuplicateKind is returned when a kind name is already registered.
	ErrDuplicateKind = errors.New("error kind already registered")

	// ErrUnknownKind is returned when looking up a name nobody registered.
	ErrUnknownKind = errors.New("unknown error kind")
)

// NotConstructibleError reports that a kind could not build the requested
// instance. It carries everything the caller asked for so the failed check
// is not lost.
type NotConstructibleError struct {
	Kind    string
	Message string
	Cause   error
	Reason  string
}

func (e *NotConstructibleError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "<nil>"
	}
	return fmt.Sprintf("%s: %s (%s): %s", ErrNotConstructible.Error(), kind, e.Reason, e.Message)
}

// Is lets errors.Is(err, ErrNotConstructible) match.
func (e *NotConstructibleError) Is(target error) bool {
	return target == ErrNotConstructible
}

func (e *NotConstructibleError) Unwrap() error { return e.Cause }
