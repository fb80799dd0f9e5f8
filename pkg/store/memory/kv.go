// Package memory provides in-memory implementations of every store kind.
//
// These stores are mutex-guarded maps with no persistence or eviction. They
// are the reference substrates for the provider contract and are also useful
// for tests and for state that doesn't need to survive a restart.
//
// All stores are safe for concurrent use. Reads return copies of stored
// bytes, so callers can't corrupt store state through a returned slice.
package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/statequery/statequery/pkg/store"
)

// KeyValueStore is an in-memory plain key-value store.
type KeyValueStore struct {
	name   string
	mu     sync.RWMutex
	closed bool
	data   map[string][]byte
}

var _ store.KeyValueStore = (*KeyValueStore)(nil)

// NewKeyValueStore creates an open, empty in-memory key-value store.
func NewKeyValueStore(name string) *KeyValueStore {
	return &KeyValueStore{
		name: name,
		data: make(map[string][]byte),
	}
}

func (s *KeyValueStore) Name() string     { return s.name }
func (s *KeyValueStore) Kind() store.Kind { return store.KindKeyValue }

// IsOpen reports whether the store is usable.
func (s *KeyValueStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Close marks the store closed. Subsequent reads and writes fail with
// ErrStoreClosed.
func (s *KeyValueStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Get returns the value for key.
func (s *KeyValueStore) Get(_ context.Context, key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreClosedError(s.name)
	}

	value, ok := s.data[string(key)]
	if !ok {
		return nil, store.NewNotFoundError(s.name, "key")
	}
	return bytes.Clone(value), nil
}

// Put stores value under key.
func (s *KeyValueStore) Put(_ context.Context, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	s.data[string(key)] = bytes.Clone(value)
	return nil
}

// Delete removes key.
func (s *KeyValueStore) Delete(_ context.Context, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	delete(s.data, string(key))
	return nil
}

// Range returns an iterator over [from, to], both bounds inclusive.
func (s *KeyValueStore) Range(_ context.Context, from, to []byte) (store.Iterator[[]byte], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreClosedError(s.name)
	}

	keys := sortedKeysInRange(s.data, from, to)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = bytes.Clone(s.data[string(k)])
	}
	return newSliceIterator(keys, values), nil
}

// All returns an iterator over every entry.
func (s *KeyValueStore) All(ctx context.Context) (store.Iterator[[]byte], error) {
	return s.Range(ctx, nil, nil)
}

// ApproximateNumEntries returns the entry count. For the in-memory store the
// estimate is exact.
func (s *KeyValueStore) ApproximateNumEntries(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, store.NewStoreClosedError(s.name)
	}
	return uint64(len(s.data)), nil
}

// TimestampedKeyValueStore is an in-memory timestamp-augmented key-value
// store.
type TimestampedKeyValueStore struct {
	name   string
	mu     sync.RWMutex
	closed bool
	data   map[string]store.ValueAndTimestamp
}

var _ store.TimestampedKeyValueStore = (*TimestampedKeyValueStore)(nil)

// NewTimestampedKeyValueStore creates an open, empty in-memory timestamped
// key-value store.
func NewTimestampedKeyValueStore(name string) *TimestampedKeyValueStore {
	return &TimestampedKeyValueStore{
		name: name,
		data: make(map[string]store.ValueAndTimestamp),
	}
}

func (s *TimestampedKeyValueStore) Name() string     { return s.name }
func (s *TimestampedKeyValueStore) Kind() store.Kind { return store.KindTimestampedKeyValue }

// IsOpen reports whether the store is usable.
func (s *TimestampedKeyValueStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Close marks the store closed.
func (s *TimestampedKeyValueStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Get returns the value and record timestamp for key.
func (s *TimestampedKeyValueStore) Get(_ context.Context, key []byte) (*store.ValueAndTimestamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreClosedError(s.name)
	}

	vt, ok := s.data[string(key)]
	if !ok {
		return nil, store.NewNotFoundError(s.name, "key")
	}
	return &store.ValueAndTimestamp{Value: bytes.Clone(vt.Value), Timestamp: vt.Timestamp}, nil
}

// Put stores value and timestamp under key.
func (s *TimestampedKeyValueStore) Put(_ context.Context, key []byte, value store.ValueAndTimestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	s.data[string(key)] = store.ValueAndTimestamp{
		Value:     bytes.Clone(value.Value),
		Timestamp: value.Timestamp,
	}
	return nil
}

// Delete removes key.
func (s *TimestampedKeyValueStore) Delete(_ context.Context, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreClosedError(s.name)
	}

	delete(s.data, string(key))
	return nil
}

// Range returns an iterator over [from, to], both bounds inclusive.
func (s *TimestampedKeyValueStore) Range(_ context.Context, from, to []byte) (store.Iterator[*store.ValueAndTimestamp], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreClosedError(s.name)
	}

	keys := sortedKeysInRange(s.data, from, to)
	values := make([]*store.ValueAndTimestamp, len(keys))
	for i, k := range keys {
		vt := s.data[string(k)]
		values[i] = &store.ValueAndTimestamp{Value: bytes.Clone(vt.Value), Timestamp: vt.Timestamp}
	}
	return newSliceIterator(keys, values), nil
}

// All returns an iterator over every entry.
func (s *TimestampedKeyValueStore) All(ctx context.Context) (store.Iterator[*store.ValueAndTimestamp], error) {
	return s.Range(ctx, nil, nil)
}

// ApproximateNumEntries returns the entry count.
func (s *TimestampedKeyValueStore) ApproximateNumEntries(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, store.NewStoreClosedError(s.name)
	}
	return uint64(len(s.data)), nil
}

// sortedKeysInRange returns the keys of data falling in [from, to] in
// ascending byte order. Nil bounds are unbounded.
func sortedKeysInRange[V any](data map[string]V, from, to []byte) [][]byte {
	keys := make([][]byte, 0, len(data))
	for k := range data {
		kb := []byte(k)
		if from != nil && bytes.Compare(kb, from) < 0 {
			continue
		}
		if to != nil && bytes.Compare(kb, to) > 0 {
			continue
		}
		keys = append(keys, kb)
	}
	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })
	return keys
}
