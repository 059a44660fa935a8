package validator

import (
	"errors"
	"reflect"

	"github.com/dmitrymomot/precond/pkg/errkind"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// absenter is implemented by optional.Value.
type absenter interface {
	IsAbsent() bool
}

// unwrapper is implemented by optional.Value.
type unwrapper interface {
	Any() (any, bool)
}

// First returns the first non-nil error, or nil.
// Arguments are evaluated by the caller, so all checks run.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func fail(kind errkind.Kind, name, phrase string) error {
	return errkind.Construct(kind, name+" "+phrase)
}

// failWithCause attaches cause when kind can wrap one and falls back to the
// message-only constructor otherwise.
func failWithCause(kind errkind.Kind, name, phrase string, cause error) error {
	if cause == nil {
		return fail(kind, name, phrase)
	}
	err := errkind.ConstructWithCause(kind, name+" "+phrase, cause)
	if !errors.Is(err, errkind.ErrNotConstructible) {
		return err
	}
	if plain := fail(kind, name, phrase); !errors.Is(plain, errkind.ErrNotConstructible) {
		return plain
	}
	return err
}

// unwrap returns the content of a present optional, nil for an absent one,
// and v itself otherwise.
func unwrap(v any) any {
	u, ok := v.(unwrapper)
	if !ok {
		return v
	}
	inner, present := u.Any()
	if !present {
		return nil
	}
	return inner
}

// isAbsent reports whether v is the absence sentinel.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if a, ok := v.(absenter); ok {
		return a.IsAbsent()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
