package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/statequery/statequery/pkg/store"
)

// WindowStore is an in-memory plain windowed store. It keeps one value per
// (key, window start) pair; retention is the caller's concern.
type WindowStore struct {
	name   string
	mu     sync.RWMutex
	closed bool
	data   map[string]map[int64][]byte
}

var _ store.WindowStore = (*WindowStore)(nil)

// NewWindowStore creates an open, empty in-memory window store.
func NewWindowStore(name string) *WindowStore {
	return &WindowStore{
		name: name,
		data: make(map[string]map[int64][]byte),
	}
}

func (s *WindowStore) Name() string     { return s.name }
func (s *WindowStore) Kind() store.Kind { return store.KindWindow }

// IsOpen reports whether the store is usable.
func (s *WindowStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Close marks the store closed.
func (s *WindowStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Put stores value for key in the window starting at windowStart.
func (s *WindowStore) Put(_ context.Context, key []byte, windowStart int64, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	windows, ok := s.data[string(key)]
	if !ok {
		windows = make(map[int64][]byte)
		s.data[string(key)] = windows
	}
	windows[windowStart] = bytes.Clone(value)
	return nil
}

// Fetch returns an iterator over the windows of key in [timeFrom, timeTo].
func (s *WindowStore) Fetch(_ context.Context, key []byte, timeFrom, timeTo int64) (store.WindowIterator[[]byte], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreClosedError(s.name)
	}

	starts := sortedWindowStarts(s.data[string(key)], timeFrom, timeTo)
	values := make([][]byte, len(starts))
	for i, ws := range starts {
		values[i] = bytes.Clone(s.data[string(key)][ws])
	}
	return newWindowIterator(starts, values), nil
}

// FetchAll returns an iterator over all windows of key.
func (s *WindowStore) FetchAll(ctx context.Context, key []byte) (store.WindowIterator[[]byte], error) {
	return s.Fetch(ctx, key, 0, maxTimestamp)
}

// TimestampedWindowStore is an in-memory timestamp-augmented windowed store.
type TimestampedWindowStore struct {
	name   string
	mu     sync.RWMutex
	closed bool
	data   map[string]map[int64]store.ValueAndTimestamp
}

var _ store.TimestampedWindowStore = (*TimestampedWindowStore)(nil)

// NewTimestampedWindowStore creates an open, empty in-memory timestamped
// window store.
func NewTimestampedWindowStore(name string) *TimestampedWindowStore {
	return &TimestampedWindowStore{
		name: name,
		data: make(map[string]map[int64]store.ValueAndTimestamp),
	}
}

func (s *TimestampedWindowStore) Name() string     { return s.name }
func (s *TimestampedWindowStore) Kind() store.Kind { return store.KindTimestampedWindow }

// IsOpen reports whether the store is usable.
func (s *TimestampedWindowStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Close marks the store closed.
func (s *TimestampedWindowStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Put stores value for key in the window starting at windowStart.
func (s *TimestampedWindowStore) Put(_ context.Context, key []byte, windowStart int64, value store.ValueAndTimestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	windows, ok := s.data[string(key)]
	if !ok {
		windows = make(map[int64]store.ValueAndTimestamp)
		s.data[string(key)] = windows
	}
	windows[windowStart] = store.ValueAndTimestamp{
		Value:     bytes.Clone(value.Value),
		Timestamp: value.Timestamp,
	}
	return nil
}

// Fetch returns an iterator over the windows of key in [timeFrom, timeTo].
func (s *TimestampedWindowStore) Fetch(_ context.Context, key []byte, timeFrom, timeTo int64) (store.WindowIterator[*store.ValueAndTimestamp], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreClosedError(s.name)
	}

	starts := sortedWindowStarts(s.data[string(key)], timeFrom, timeTo)
	values := make([]*store.ValueAndTimestamp, len(starts))
	for i, ws := range starts {
		vt := s.data[string(key)][ws]
		values[i] = &store.ValueAndTimestamp{Value: bytes.Clone(vt.Value), Timestamp: vt.Timestamp}
	}
	return newWindowIterator(starts, values), nil
}

// FetchAll returns an iterator over all windows of key.
func (s *TimestampedWindowStore) FetchAll(ctx context.Context, key []byte) (store.WindowIterator[*store.ValueAndTimestamp], error) {
	return s.Fetch(ctx, key, 0, maxTimestamp)
}

const maxTimestamp = int64(^uint64(0) >> 1)

// sortedWindowStarts returns the window starts of windows falling in
// [timeFrom, timeTo] in ascending order.
func sortedWindowStarts[V any](windows map[int64]V, timeFrom, timeTo int64) []int64 {
	starts := make([]int64, 0, len(windows))
	for ws := range windows {
		if ws < timeFrom || ws > timeTo {
			continue
		}
		starts = append(starts, ws)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })
	return starts
}
