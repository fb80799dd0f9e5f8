// Package registry provides a thread-safe registry of named state stores.
//
// The registry is built once at startup (stores registered as the topology
// is assembled) and queried many times afterwards by the provider. It holds
// references to stores but does not own their lifecycle; opening and closing
// is driven by whoever constructed them.
package registry

import (
	"sync"

	"github.com/statequery/statequery/internal/logger"
	"github.com/statequery/statequery/pkg/store"
)

// Registry maps unique store names to store handles.
//
// Example usage:
//
//	reg := registry.NewRegistry()
//	reg.Register(memory.NewKeyValueStore("counts"))
//	reg.Register(memory.NewWindowStore("clicks-per-minute"))
//
//	p := provider.New(reg)
//	views, err := provider.Stores(p, "counts", provider.KeyValueQuery())
type Registry struct {
	mu     sync.RWMutex
	stores map[string]store.Store
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]store.Store),
	}
}

// Register adds a store under its own name.
// Returns an error if the store is nil, unnamed, or already registered.
func (r *Registry) Register(s store.Store) error {
	if s == nil {
		return store.NewInvalidArgumentError("", "cannot register nil store")
	}
	name := s.Name()
	if name == "" {
		return store.NewInvalidArgumentError("", "cannot register store with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[name]; exists {
		return store.NewInvalidArgumentError(name, "store already registered")
	}

	r.stores[name] = s
	logger.Debug("Registered store", "store", name, "kind", s.Kind().String())
	return nil
}

// Deregister removes the store registered under name.
// Returns an error if no store is registered under name.
// The store itself is not closed; the registry does not own lifecycle.
func (r *Registry) Deregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[name]; !exists {
		return store.NewNotFoundError(name, "store")
	}

	delete(r.stores, name)
	logger.Debug("Deregistered store", "store", name)
	return nil
}

// Lookup returns the store registered under name, if any.
func (r *Registry) Lookup(name string) (store.Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.stores[name]
	return s, exists
}

// Get retrieves a store by name.
// Returns nil, error if no store is registered under name.
func (r *Registry) Get(name string) (store.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.stores[name]
	if !exists {
		return nil, store.NewNotFoundError(name, "store")
	}
	return s, nil
}

// Exists checks if a store with the given name is registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.stores[name]
	return exists
}

// List returns all registered store names.
// The returned slice is a copy and safe to modify.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	return names
}

// ListByKind returns the names of all registered stores of the given kind.
// The returned slice is a copy and safe to modify.
func (r *Registry) ListByKind(kind store.Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, s := range r.stores {
		if s.Kind() == kind {
			names = append(names, name)
		}
	}
	return names
}

// Count returns the number of registered stores.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}
