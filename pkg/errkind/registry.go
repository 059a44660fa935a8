package errkind

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Registry maps kind names to kinds. The zero value is not usable; create one
// with NewRegistry. A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry creates a registry holding the given kinds.
// Panics on nil or duplicate kinds: the initial set is wired at startup and a
// mistake there should prevent it.
func NewRegistry(kinds ...Kind) *Registry {
	r := &Registry{kinds: make(map[string]Kind, len(kinds))}
	for _, k := range kinds {
		if err := r.Register(k); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds kind under its name.
func (r *Registry) Register(kind Kind) error {
	if isNil(kind) {
		return ErrNilKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := kind.Name()
	if _, exists := r.kinds[name]; exists {
		return errors.Join(ErrDuplicateKind, fmt.Errorf("kind %q", name))
	}
	r.kinds[name] = kind
	return nil
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.kinds[name]
	if !ok {
		return nil, errors.Join(ErrUnknownKind, fmt.Errorf("kind %q", name))
	}
	return kind, nil
}

// MustLookup works like Lookup but panics for unknown names.
func (r *Registry) MustLookup(name string) Kind {
	kind, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return kind
}

// Names returns the registered kind names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
