package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestStoreErrorMessage(t *testing.T) {
	err := NewStoreClosedError("counts")
	if got := err.Error(); got != "store is not open: counts" {
		t.Errorf("Error() = %q", got)
	}

	bare := &StoreError{Code: ErrIOError, Message: "read failed"}
	if got := bare.Error(); got != "read failed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		notFound     bool
		closed       bool
		notSupported bool
	}{
		{"not found", NewNotFoundError("s", "key"), true, false, false},
		{"closed", NewStoreClosedError("s"), false, true, false},
		{"not supported", NewNotSupportedError("s", "write"), false, false, true},
		{"invalid argument", NewInvalidArgumentError("s", "bad"), false, false, false},
		{"plain error", errors.New("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.notFound)
			}
			if got := IsClosed(tt.err); got != tt.closed {
				t.Errorf("IsClosed() = %v, want %v", got, tt.closed)
			}
			if got := IsNotSupported(tt.err); got != tt.notSupported {
				t.Errorf("IsNotSupported() = %v, want %v", got, tt.notSupported)
			}
		})
	}
}

func TestErrorPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("resolving store: %w", NewStoreClosedError("counts"))
	if !IsClosed(wrapped) {
		t.Error("IsClosed failed to unwrap")
	}
	if IsNotFound(wrapped) {
		t.Error("IsNotFound matched a closed-store error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindKeyValue, "key-value"},
		{KindTimestampedKeyValue, "timestamped-key-value"},
		{KindWindow, "window"},
		{KindTimestampedWindow, "timestamped-window"},
		{KindSession, "session"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
