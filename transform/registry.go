package transform

import (
	"sort"
	"sync"
)

// Registry maps transform names to their registration specs.
//
// It is read-mostly: registration happens during setup, lookups afterwards.
// Registering a name twice is not an error — the later spec fully replaces
// the earlier one for all subsequent lookups.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Spec
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Spec)}
}

// Register validates the spec and installs it under its name,
// overwriting any earlier registration.
func (r *Registry) Register(spec Spec) error {
	if err := spec.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[spec.Name] = spec
	return nil
}

// Lookup returns the spec currently registered under name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.entries[name]
	return spec, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
