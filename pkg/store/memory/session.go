package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/statequery/statequery/pkg/store"
)

// sessionEntry is one session window: a [start, end] range and the value
// aggregated over it.
type sessionEntry struct {
	start int64
	end   int64
	value []byte
}

// SessionStore is an in-memory session-windowed store.
type SessionStore struct {
	name   string
	mu     sync.RWMutex
	closed bool
	data   map[string][]sessionEntry
}

var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an open, empty in-memory session store.
func NewSessionStore(name string) *SessionStore {
	return &SessionStore{
		name: name,
		data: make(map[string][]sessionEntry),
	}
}

func (s *SessionStore) Name() string     { return s.name }
func (s *SessionStore) Kind() store.Kind { return store.KindSession }

// IsOpen reports whether the store is usable.
func (s *SessionStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Close marks the store closed.
func (s *SessionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Put stores value for the session of key spanning [sessionStart,
// sessionEnd], replacing any existing value for that exact range.
func (s *SessionStore) Put(_ context.Context, key []byte, sessionStart, sessionEnd int64, value []byte) error {
	if sessionEnd < sessionStart {
		return store.NewInvalidArgumentError(s.name, "session end precedes session start")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	entry := sessionEntry{start: sessionStart, end: sessionEnd, value: bytes.Clone(value)}
	sessions := s.data[string(key)]
	for i, existing := range sessions {
		if existing.start == sessionStart && existing.end == sessionEnd {
			sessions[i] = entry
			return nil
		}
	}
	s.data[string(key)] = append(sessions, entry)
	return nil
}

// Remove deletes the session of key spanning exactly [sessionStart,
// sessionEnd].
func (s *SessionStore) Remove(_ context.Context, key []byte, sessionStart, sessionEnd int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	sessions := s.data[string(key)]
	for i, existing := range sessions {
		if existing.start == sessionStart && existing.end == sessionEnd {
			s.data[string(key)] = append(sessions[:i], sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

// Fetch returns an iterator over all sessions of key.
func (s *SessionStore) Fetch(ctx context.Context, key []byte) (store.SessionIterator, error) {
	return s.FindSessions(ctx, key, 0, maxTimestamp)
}

// FindSessions returns an iterator over the sessions of key overlapping
// [earliestSessionEnd, latestSessionStart].
func (s *SessionStore) FindSessions(_ context.Context, key []byte, earliestSessionEnd, latestSessionStart int64) (store.SessionIterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreClosedError(s.name)
	}

	var matched []sessionEntry
	for _, entry := range s.data[string(key)] {
		if entry.end < earliestSessionEnd || entry.start > latestSessionStart {
			continue
		}
		matched = append(matched, sessionEntry{
			start: entry.start,
			end:   entry.end,
			value: bytes.Clone(entry.value),
		})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].start < matched[j].start })
	return newSessionIterator(matched), nil
}
