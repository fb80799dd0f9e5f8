// Package badger provides BadgerDB-backed key-value stores, plain and
// timestamp-augmented. Each store owns its own badger DB instance; Close
// closes the DB and flips the handle to the closed state the provider's
// liveness check observes.
package badger

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/statequery/statequery/internal/logger"
	"github.com/statequery/statequery/pkg/store"
)

// Options configures a badger-backed store.
type Options struct {
	// Dir is the directory holding the badger value log and LSM tree.
	// Ignored when InMemory is set.
	Dir string

	// InMemory keeps all data in memory. Useful for tests.
	InMemory bool

	// SyncWrites makes every write durable before returning.
	SyncWrites bool
}

// badgerStore holds the DB handle and lifecycle state shared by the plain
// and timestamped store types.
type badgerStore struct {
	name   string
	mu     sync.RWMutex
	closed bool
	db     *badger.DB
}

func openBadgerStore(name string, opts Options) (*badgerStore, error) {
	if name == "" {
		return nil, store.NewInvalidArgumentError(name, "store name must not be empty")
	}
	if !opts.InMemory && opts.Dir == "" {
		return nil, store.NewInvalidArgumentError(name, "badger store requires a directory")
	}

	bopts := badger.DefaultOptions(opts.Dir).
		WithInMemory(opts.InMemory).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(nil)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store %q: %w", name, err)
	}

	logger.Info("Opened badger store",
		"store", name,
		"dir", opts.Dir,
		"in_memory", opts.InMemory)

	return &badgerStore{name: name, db: db}, nil
}

func (s *badgerStore) Name() string { return s.name }

// IsOpen reports whether the store is usable.
func (s *badgerStore) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// Close closes the underlying badger DB. Closing twice is a no-op.
func (s *badgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	logger.Info("Closing badger store", "store", s.name)

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger store %q: %w", s.name, err)
	}
	return nil
}

// checkOpen returns ErrStoreClosed if the store has been closed.
func (s *badgerStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return store.NewStoreClosedError(s.name)
	}
	return nil
}

// get returns the raw stored bytes for key.
func (s *badgerStore) get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, store.NewNotFoundError(s.name, "key")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key from badger store %q: %w", s.name, err)
	}
	return value, nil
}

// set stores raw bytes under key.
func (s *badgerStore) set(key, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key to badger store %q: %w", s.name, err)
	}
	return nil
}

// del removes key. Deleting an absent key is not an error.
func (s *badgerStore) del(key []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("failed to delete key from badger store %q: %w", s.name, err)
	}
	return nil
}

// scan materializes every entry with key in [from, to] (nil bounds are
// unbounded) in ascending key order. Materializing under a single View
// transaction gives iteration a consistent snapshot without holding the
// transaction open across caller code.
func (s *badgerStore) scan(from, to []byte) (keys, values [][]byte, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		if from != nil {
			it.Seek(from)
		} else {
			it.Rewind()
		}
		for ; it.Valid(); it.Next() {
			item := it.Item()
			key := item.KeyCopy(nil)
			if to != nil && bytes.Compare(key, to) > 0 {
				break
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			keys = append(keys, key)
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan badger store %q: %w", s.name, err)
	}
	return keys, values, nil
}

// count returns the number of live keys.
func (s *badgerStore) count() (uint64, error) {
	var n uint64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count badger store %q: %w", s.name, err)
	}
	return n, nil
}

// sliceIterator is a store.Iterator over a materialized scan result.
type sliceIterator[V any] struct {
	keys   [][]byte
	values []V
	pos    int
}

func newSliceIterator[V any](keys [][]byte, values []V) *sliceIterator[V] {
	return &sliceIterator[V]{keys: keys, values: values, pos: -1}
}

func (it *sliceIterator[V]) Next() bool {
	if it.pos+1 >= len(it.keys) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator[V]) Key() []byte { return it.keys[it.pos] }
func (it *sliceIterator[V]) Value() V    { return it.values[it.pos] }
func (it *sliceIterator[V]) Err() error  { return nil }
func (it *sliceIterator[V]) Close() error {
	it.pos = len(it.keys)
	return nil
}
