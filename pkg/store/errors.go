package store

import "errors"

// ErrorCode represents the category of a store error.
//
// These are domain errors (key not found, store closed, etc.) as opposed to
// infrastructure errors from the underlying engine, which implementations
// wrap with fmt.Errorf and %w instead.
type ErrorCode int

const (
	// ErrNotFound indicates the requested key or store doesn't exist.
	ErrNotFound ErrorCode = iota

	// ErrStoreClosed indicates the store is registered but has been closed.
	// This is the provider's single hard failure: a closed-but-registered
	// store signals a lifecycle bug or a shutdown race the caller must
	// handle explicitly, distinct from "not found".
	ErrStoreClosed

	// ErrInvalidArgument indicates invalid parameters were provided.
	// Examples: nil store, empty name, inverted range bounds.
	ErrInvalidArgument

	// ErrNotSupported indicates the operation is not supported by the
	// implementation or by an adapted read-only view.
	ErrNotSupported

	// ErrIOError indicates the underlying engine failed to read or write.
	ErrIOError
)

// StoreError is a domain error from store or provider operations.
type StoreError struct {
	// Code is the error category.
	Code ErrorCode

	// Message is a human-readable error description.
	Message string

	// Store is the store name related to the error, if applicable.
	Store string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Store != "" {
		return e.Message + ": " + e.Store
	}
	return e.Message
}

// NewNotFoundError creates a StoreError for a missing key or store.
func NewNotFoundError(name, what string) *StoreError {
	return &StoreError{
		Code:    ErrNotFound,
		Message: what + " not found",
		Store:   name,
	}
}

// NewStoreClosedError creates a StoreError for a store that is registered
// but no longer open.
func NewStoreClosedError(name string) *StoreError {
	return &StoreError{
		Code:    ErrStoreClosed,
		Message: "store is not open",
		Store:   name,
	}
}

// NewInvalidArgumentError creates a StoreError for invalid parameters.
func NewInvalidArgumentError(name, message string) *StoreError {
	return &StoreError{
		Code:    ErrInvalidArgument,
		Message: message,
		Store:   name,
	}
}

// NewNotSupportedError creates a StoreError for unsupported operations.
func NewNotSupportedError(name, operation string) *StoreError {
	return &StoreError{
		Code:    ErrNotSupported,
		Message: operation + " not supported",
		Store:   name,
	}
}

// IsNotFound reports whether err is a StoreError with code ErrNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, ErrNotFound)
}

// IsClosed reports whether err is a StoreError with code ErrStoreClosed.
func IsClosed(err error) bool {
	return hasCode(err, ErrStoreClosed)
}

// IsNotSupported reports whether err is a StoreError with code ErrNotSupported.
func IsNotSupported(err error) bool {
	return hasCode(err, ErrNotSupported)
}

func hasCode(err error, code ErrorCode) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
