// Package store defines the state store handle contract shared by every
// store implementation and by the query provider.
//
// A store handle is a named, stateful object with a lifecycle (open or
// closed) and a kind tag identifying its family (key-value, window, session,
// each optionally timestamp-augmented). The provider matches handles against
// caller capabilities using only the kind tag and liveness; the read
// interfaces in this package are the capability surfaces callers actually
// consume.
//
// Lifecycle is owned by whoever constructed the store. The registry and the
// provider only ever read it.
package store

// Kind identifies the concrete family of a state store handle.
//
// The kind is fixed at construction time and drives capability matching in
// the provider. New kinds extend the set; existing values never change
// meaning.
type Kind int

const (
	// KindKeyValue is a plain key-value store.
	KindKeyValue Kind = iota

	// KindTimestampedKeyValue is a key-value store whose values carry a
	// record timestamp alongside the payload.
	KindTimestampedKeyValue

	// KindWindow is a windowed store keyed by (key, window start).
	KindWindow

	// KindTimestampedWindow is a windowed store with timestamped values.
	KindTimestampedWindow

	// KindSession is a session-windowed store keyed by (key, session range).
	KindSession
)

func (k Kind) String() string {
	switch k {
	case KindKeyValue:
		return "key-value"
	case KindTimestampedKeyValue:
		return "timestamped-key-value"
	case KindWindow:
		return "window"
	case KindTimestampedWindow:
		return "timestamped-window"
	case KindSession:
		return "session"
	default:
		return "unknown"
	}
}

// Store is the minimal handle contract every state store implements.
//
// IsOpen may change between calls (a store can be closed concurrently with a
// query); callers take a single synchronous reading and act on it without
// retrying.
type Store interface {
	// Name returns the store's registered name.
	Name() string

	// Kind returns the store's family tag.
	Kind() Kind

	// IsOpen reports whether the store is currently usable.
	IsOpen() bool

	// Close releases the store's resources and marks it closed.
	// Closing an already-closed store is a no-op.
	Close() error
}

// ValueAndTimestamp is a value annotated with the epoch-millisecond
// timestamp of the record that produced it. It is the value shape of the
// timestamped store families.
type ValueAndTimestamp struct {
	Value     []byte
	Timestamp int64
}
