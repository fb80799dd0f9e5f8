package store

import "context"

// ============================================================================
// Session Capabilities
// ============================================================================

// ReadOnlySessionStore is the session-windowed read capability.
//
// A session store keeps one aggregated value per (key, session range) pair,
// where a session range is a [start, end] interval in epoch milliseconds.
type ReadOnlySessionStore interface {
	// Fetch returns an iterator over all sessions of key.
	Fetch(ctx context.Context, key []byte) (SessionIterator, error)

	// FindSessions returns an iterator over the sessions of key that
	// overlap [earliestSessionEnd, latestSessionStart]: sessions whose end
	// is >= earliestSessionEnd and whose start is <= latestSessionStart.
	FindSessions(ctx context.Context, key []byte, earliestSessionEnd, latestSessionStart int64) (SessionIterator, error)
}

// SessionStore is a writable session-windowed store.
type SessionStore interface {
	Store
	ReadOnlySessionStore

	// Put stores value for the session of key spanning [sessionStart,
	// sessionEnd], replacing any existing value for that exact range.
	Put(ctx context.Context, key []byte, sessionStart, sessionEnd int64, value []byte) error

	// Remove deletes the session of key spanning exactly [sessionStart,
	// sessionEnd]. Removing an absent session is not an error.
	Remove(ctx context.Context, key []byte, sessionStart, sessionEnd int64) error
}
