package store

// Iterator walks key/value entries in ascending key order.
//
// The usual loop is:
//
//	it, err := kv.Range(ctx, from, to)
//	if err != nil { ... }
//	defer it.Close()
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// Key and Value are only valid after Next has returned true. Iterators are
// not safe for concurrent use.
type Iterator[V any] interface {
	// Next advances to the next entry. It returns false when the iteration
	// is exhausted or an error occurred.
	Next() bool

	// Key returns the key of the current entry.
	Key() []byte

	// Value returns the value of the current entry.
	Value() V

	// Err returns the error that stopped iteration, if any.
	Err() error

	// Close releases resources held by the iterator.
	Close() error
}

// WindowIterator walks the windows of a single key in ascending window-start
// order. Same validity and concurrency rules as Iterator.
type WindowIterator[V any] interface {
	// Next advances to the next window.
	Next() bool

	// WindowStart returns the start of the current window, epoch millis.
	WindowStart() int64

	// Value returns the value of the current window.
	Value() V

	// Err returns the error that stopped iteration, if any.
	Err() error

	// Close releases resources held by the iterator.
	Close() error
}

// SessionIterator walks the session windows of a single key in ascending
// session-start order. Same validity and concurrency rules as Iterator.
type SessionIterator interface {
	// Next advances to the next session.
	Next() bool

	// SessionStart returns the start of the current session, epoch millis.
	SessionStart() int64

	// SessionEnd returns the end of the current session, epoch millis.
	SessionEnd() int64

	// Value returns the aggregated value of the current session.
	Value() []byte

	// Err returns the error that stopped iteration, if any.
	Err() error

	// Close releases resources held by the iterator.
	Close() error
}
