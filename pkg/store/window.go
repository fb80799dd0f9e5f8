package store

import "context"

// ============================================================================
// Window Capabilities
// ============================================================================

// ReadOnlyWindowStore is the plain windowed read capability.
//
// A windowed store keeps one value per (key, window start) pair. Time bounds
// are epoch milliseconds, inclusive on both ends.
type ReadOnlyWindowStore interface {
	// Fetch returns an iterator over the windows of key whose start falls
	// in [timeFrom, timeTo].
	Fetch(ctx context.Context, key []byte, timeFrom, timeTo int64) (WindowIterator[[]byte], error)

	// FetchAll returns an iterator over all windows of key.
	FetchAll(ctx context.Context, key []byte) (WindowIterator[[]byte], error)
}

// ReadOnlyTimestampedWindowStore is the timestamp-augmented windowed read
// capability. Not assignable to ReadOnlyWindowStore; downgrading requires
// the provider's adapter.
type ReadOnlyTimestampedWindowStore interface {
	// Fetch returns an iterator over the windows of key whose start falls
	// in [timeFrom, timeTo].
	Fetch(ctx context.Context, key []byte, timeFrom, timeTo int64) (WindowIterator[*ValueAndTimestamp], error)

	// FetchAll returns an iterator over all windows of key.
	FetchAll(ctx context.Context, key []byte) (WindowIterator[*ValueAndTimestamp], error)
}

// WindowStore is a writable plain windowed store.
type WindowStore interface {
	Store
	ReadOnlyWindowStore

	// Put stores value for key in the window starting at windowStart,
	// replacing any existing value for that window.
	Put(ctx context.Context, key []byte, windowStart int64, value []byte) error
}

// TimestampedWindowStore is a writable timestamp-augmented windowed store.
type TimestampedWindowStore interface {
	Store
	ReadOnlyTimestampedWindowStore

	// Put stores value for key in the window starting at windowStart,
	// replacing any existing value for that window.
	Put(ctx context.Context, key []byte, windowStart int64, value ValueAndTimestamp) error
}
