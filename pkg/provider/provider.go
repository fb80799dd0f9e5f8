// Package provider resolves named state stores into typed read-only views.
//
// Callers ask for "the store named X, usable as capability Y" and get back
// zero or one matching view. Matching applies the capability-compatibility
// rules owned by the QueryType implementations in this package: a
// timestamp-augmented store satisfies its plain counterpart's capability
// through a read-only adapter that strips the timestamp, the reverse never
// holds, and families (key-value, window, session) never cross.
//
// Absence of a store under a name is a normal, silent outcome — the same
// logical store may live on other instances a federated caller probes one by
// one — so it yields an empty result, never an error. The single hard
// failure is a store that is registered but closed, which signals a
// lifecycle bug or a shutdown race the caller must handle explicitly.
package provider

import (
	"github.com/statequery/statequery/pkg/store"
)

// StoreLookup is the registry surface the provider needs: a point lookup by
// name. *registry.Registry satisfies it.
type StoreLookup interface {
	Lookup(name string) (store.Store, bool)
}

// Provider resolves store names against a single registry.
//
// The provider holds no mutable state of its own; it is safe for concurrent
// use as long as the underlying lookup is. Store liveness is read once per
// query with whatever atomicity the handle provides — there is no locking or
// retry around liveness races.
type Provider struct {
	lookup StoreLookup
}

// New creates a provider over the given lookup.
func New(lookup StoreLookup) *Provider {
	return &Provider{lookup: lookup}
}

// NewFromMap creates a provider over a fixed name-to-store map. The map is
// copied; later changes to the argument are not observed.
func NewFromMap(stores map[string]store.Store) *Provider {
	m := make(mapLookup, len(stores))
	for name, s := range stores {
		m[name] = s
	}
	return New(m)
}

type mapLookup map[string]store.Store

func (m mapLookup) Lookup(name string) (store.Store, bool) {
	s, ok := m[name]
	return s, ok
}

// Stores resolves the store registered under name into the typed view the
// query describes.
//
// The result has zero or one element: empty when no store is registered
// under name or the registered store's kind is incompatible with the query,
// one element when the kind matches exactly (the handle itself) or is
// adaptable (a read-only adapter over the handle). A registered store that
// is not open fails with a StoreError carrying ErrStoreClosed, regardless of
// the requested capability.
//
// Stores is a top-level function rather than a method so each query type can
// carry its view type as a type parameter.
func Stores[T any](p *Provider, name string, query QueryType[T]) ([]T, error) {
	s, ok := p.lookup.Lookup(name)
	if !ok {
		return nil, nil
	}

	if !s.IsOpen() {
		return nil, store.NewStoreClosedError(name)
	}

	match := query.Compatible(s.Kind())
	if match == MatchNone {
		return nil, nil
	}

	view, err := query.View(s, match)
	if err != nil {
		return nil, err
	}
	return []T{view}, nil
}
