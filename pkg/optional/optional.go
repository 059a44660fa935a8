// Package optional provides an explicit "value may be absent" wrapper.
//
// Go zero values are legitimate values: an empty string or an empty slice is
// present, just empty. Value[T] makes absence a separate, explicit state so
// that checks which skip absent input never confuse "not provided" with
// "provided but empty".
//
//	name := optional.Of(req.Name)        // present, maybe ""
//	nick := optional.FromPtr(req.Nick)   // absent when req.Nick == nil
//	none := optional.None[[]string]()    // absent
package optional

import "fmt"

// Value holds either a present value of type T or nothing.
// The zero Value is absent.
type Value[T any] struct {
	value T
	ok    bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns an absent Value for a nil pointer and a present Value
// holding *p otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.ok
}

// Any returns the held value as an interface and whether it is present.
func (v Value[T]) Any() (any, bool) {
	if !v.ok {
		return nil, false
	}
	return v.value, true
}

// IsAbsent reports whether no value is held.
func (v Value[T]) IsAbsent() bool {
	return !v.ok
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.ok
}

// OrElse returns the held value, or fallback when absent.
func (v Value[T]) OrElse(fallback T) T {
	if !v.ok {
		return fallback
	}
	return v.value
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (v Value[T]) Ptr() *T {
	if !v.ok {
		return nil
	}
	out := v.value
	return &out
}

func (v Value[T]) String() string {
	if !v.ok {
		return "<absent>"
	}
	return fmt.Sprint(v.value)
}
