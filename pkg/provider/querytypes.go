package provider

import (
	"fmt"

	"github.com/statequery/statequery/pkg/store"
)

// Match is the outcome of checking a store kind against a query.
type Match int

const (
	// MatchNone rejects the kind; the store cannot serve the query.
	MatchNone Match = iota

	// MatchExact accepts the kind as-is; the handle itself is the view.
	MatchExact

	// MatchAdapted accepts the kind behind a read-only adapter.
	MatchAdapted
)

// QueryType describes a capability a caller can request from the provider:
// which store kinds can serve it and how to materialize the typed view T
// from a compatible handle.
//
// Each query type owns its own compatibility row, so new store kinds extend
// the system with new QueryType implementations without touching existing
// ones.
type QueryType[T any] interface {
	// Name returns the capability name, for error messages and logs.
	Name() string

	// Compatible reports whether a store of the given kind can serve this
	// query, and whether adaptation is needed.
	Compatible(kind store.Kind) Match

	// View materializes the typed view from a handle whose kind returned
	// the given non-MatchNone match. It fails only if the handle's kind tag
	// and its actual interface disagree, which indicates a registration bug.
	View(s store.Store, match Match) (T, error)
}

// KeyValueQuery requests the plain key-value read capability. Served
// exactly by KindKeyValue and by adaptation from KindTimestampedKeyValue.
func KeyValueQuery() QueryType[store.ReadOnlyKeyValueStore] {
	return keyValueQuery{}
}

type keyValueQuery struct{}

func (keyValueQuery) Name() string { return "key-value" }

func (keyValueQuery) Compatible(kind store.Kind) Match {
	switch kind {
	case store.KindKeyValue:
		return MatchExact
	case store.KindTimestampedKeyValue:
		return MatchAdapted
	default:
		return MatchNone
	}
}

func (q keyValueQuery) View(s store.Store, match Match) (store.ReadOnlyKeyValueStore, error) {
	if match == MatchAdapted {
		ts, ok := s.(store.ReadOnlyTimestampedKeyValueStore)
		if !ok {
			return nil, kindMismatch(s, q.Name())
		}
		return newKeyValueAdapter(ts), nil
	}
	kv, ok := s.(store.ReadOnlyKeyValueStore)
	if !ok {
		return nil, kindMismatch(s, q.Name())
	}
	return kv, nil
}

// TimestampedKeyValueQuery requests the timestamp-augmented key-value read
// capability. Served only by KindTimestampedKeyValue; a plain key-value
// store has no timestamps to offer and is never upgraded.
func TimestampedKeyValueQuery() QueryType[store.ReadOnlyTimestampedKeyValueStore] {
	return timestampedKeyValueQuery{}
}

type timestampedKeyValueQuery struct{}

func (timestampedKeyValueQuery) Name() string { return "timestamped-key-value" }

func (timestampedKeyValueQuery) Compatible(kind store.Kind) Match {
	if kind == store.KindTimestampedKeyValue {
		return MatchExact
	}
	return MatchNone
}

func (q timestampedKeyValueQuery) View(s store.Store, _ Match) (store.ReadOnlyTimestampedKeyValueStore, error) {
	ts, ok := s.(store.ReadOnlyTimestampedKeyValueStore)
	if !ok {
		return nil, kindMismatch(s, q.Name())
	}
	return ts, nil
}

// WindowQuery requests the plain windowed read capability. Served exactly
// by KindWindow and by adaptation from KindTimestampedWindow.
func WindowQuery() QueryType[store.ReadOnlyWindowStore] {
	return windowQuery{}
}

type windowQuery struct{}

func (windowQuery) Name() string { return "window" }

func (windowQuery) Compatible(kind store.Kind) Match {
	switch kind {
	case store.KindWindow:
		return MatchExact
	case store.KindTimestampedWindow:
		return MatchAdapted
	default:
		return MatchNone
	}
}

func (q windowQuery) View(s store.Store, match Match) (store.ReadOnlyWindowStore, error) {
	if match == MatchAdapted {
		ts, ok := s.(store.ReadOnlyTimestampedWindowStore)
		if !ok {
			return nil, kindMismatch(s, q.Name())
		}
		return newWindowAdapter(ts), nil
	}
	w, ok := s.(store.ReadOnlyWindowStore)
	if !ok {
		return nil, kindMismatch(s, q.Name())
	}
	return w, nil
}

// TimestampedWindowQuery requests the timestamp-augmented windowed read
// capability. Served only by KindTimestampedWindow.
func TimestampedWindowQuery() QueryType[store.ReadOnlyTimestampedWindowStore] {
	return timestampedWindowQuery{}
}

type timestampedWindowQuery struct{}

func (timestampedWindowQuery) Name() string { return "timestamped-window" }

func (timestampedWindowQuery) Compatible(kind store.Kind) Match {
	if kind == store.KindTimestampedWindow {
		return MatchExact
	}
	return MatchNone
}

func (q timestampedWindowQuery) View(s store.Store, _ Match) (store.ReadOnlyTimestampedWindowStore, error) {
	ts, ok := s.(store.ReadOnlyTimestampedWindowStore)
	if !ok {
		return nil, kindMismatch(s, q.Name())
	}
	return ts, nil
}

// SessionQuery requests the session-windowed read capability. Served only
// by KindSession; session stores have no timestamped variant.
func SessionQuery() QueryType[store.ReadOnlySessionStore] {
	return sessionQuery{}
}

type sessionQuery struct{}

func (sessionQuery) Name() string { return "session" }

func (sessionQuery) Compatible(kind store.Kind) Match {
	if kind == store.KindSession {
		return MatchExact
	}
	return MatchNone
}

func (q sessionQuery) View(s store.Store, _ Match) (store.ReadOnlySessionStore, error) {
	sess, ok := s.(store.ReadOnlySessionStore)
	if !ok {
		return nil, kindMismatch(s, q.Name())
	}
	return sess, nil
}

func kindMismatch(s store.Store, capability string) error {
	return fmt.Errorf("store %q is tagged %s but does not implement the %s capability",
		s.Name(), s.Kind(), capability)
}
