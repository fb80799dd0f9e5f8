package store

import "context"

// ============================================================================
// Key-Value Capabilities
// ============================================================================

// ReadOnlyKeyValueStore is the plain key-value read capability.
//
// Keys and values are raw bytes; typed views are a serialization concern
// layered above this package. Get returns a StoreError with ErrNotFound for
// absent keys and ErrStoreClosed once the store has been closed.
type ReadOnlyKeyValueStore interface {
	// Get returns the value for key.
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Range returns an iterator over [from, to], both bounds inclusive.
	// A nil from starts at the first key; a nil to ends at the last.
	Range(ctx context.Context, from, to []byte) (Iterator[[]byte], error)

	// All returns an iterator over every entry.
	All(ctx context.Context) (Iterator[[]byte], error)

	// ApproximateNumEntries returns an estimate of the entry count.
	ApproximateNumEntries(ctx context.Context) (uint64, error)
}

// ReadOnlyTimestampedKeyValueStore is the timestamp-augmented key-value
// read capability. It is deliberately not assignable to
// ReadOnlyKeyValueStore; downgrading requires the provider's adapter.
type ReadOnlyTimestampedKeyValueStore interface {
	// Get returns the value and record timestamp for key.
	Get(ctx context.Context, key []byte) (*ValueAndTimestamp, error)

	// Range returns an iterator over [from, to], both bounds inclusive.
	Range(ctx context.Context, from, to []byte) (Iterator[*ValueAndTimestamp], error)

	// All returns an iterator over every entry.
	All(ctx context.Context) (Iterator[*ValueAndTimestamp], error)

	// ApproximateNumEntries returns an estimate of the entry count.
	ApproximateNumEntries(ctx context.Context) (uint64, error)
}

// KeyValueStore is a writable plain key-value store.
type KeyValueStore interface {
	Store
	ReadOnlyKeyValueStore

	// Put stores value under key, replacing any existing value.
	Put(ctx context.Context, key, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key []byte) error
}

// TimestampedKeyValueStore is a writable timestamp-augmented key-value store.
type TimestampedKeyValueStore interface {
	Store
	ReadOnlyTimestampedKeyValueStore

	// Put stores value and timestamp under key, replacing any existing entry.
	Put(ctx context.Context, key []byte, value ValueAndTimestamp) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key []byte) error
}
