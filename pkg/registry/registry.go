// Package registry provides an explicit keyed registry object mapping actor
// kinds to their machine instances. It replaces the process-wide singleton
// dictionary pattern: the registry is constructed at application start,
// passed to whoever needs actor-to-machine lookup, and carries no global
// state.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotRegistered is returned when no machine is registered for a kind.
var ErrNotRegistered = errors.New("no machine registered for kind")

// Registry maps actor kinds to machine instances. Machines are generic over
// their actor type, so the registry stores them untyped; use Resolve to get
// a typed handle back.
type Registry struct {
	mu       sync.RWMutex
	machines map[string]any
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		machines: make(map[string]any),
	}
}

// Register adds a machine for an actor kind.
// If the kind is already registered, it is overwritten.
func (r *Registry) Register(kind string, machine any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.machines[kind] = machine
}

// Get looks up the machine for a kind.
func (r *Registry) Get(kind string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.machines[kind]
	return m, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.machines))
	for k := range r.machines {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Resolve looks up the machine for a kind and asserts it to M.
func Resolve[M any](r *Registry, kind string) (M, error) {
	var zero M

	raw, ok := r.Get(kind)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNotRegistered, kind)
	}

	m, ok := raw.(M)
	if !ok {
		return zero, fmt.Errorf("machine for kind %s has type %T, not %T", kind, raw, zero)
	}
	return m, nil
}
