package table

import (
	"errors"
	"fmt"
)

var (
	// ErrRetryTimeout is surfaced when the gateway kept signalling overload
	// until the retry budget ran out. Distinct from transport I/O errors so
	// callers can tell "server says try later" from "network is broken".
	ErrRetryTimeout = errors.New("gateway overloaded, retry attempts exhausted")

	// ErrNotFound is surfaced when a required remote resource is absent.
	ErrNotFound = errors.New("not found")

	errRowMismatch       = errors.New("cell row does not match mutation row")
	errInvalidTimeRange  = errors.New("invalid time range")
	errInvalidVersions   = errors.New("version count must be positive")
	errUnsupportedDelete = errors.New("unsupported delete shape")
	errEmptyPut          = errors.New("put carries no cells")
	errScannerExpired    = errors.New("scanner expired")
)

// Error wraps a sentinel error with additional context
type Error struct {
	err     error  // The underlying sentinel error
	context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.context == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Error(), e.context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.err
}

// newError creates a new table error with context
func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		err:     err,
		context: fmt.Sprintf(format, args...),
	}
}

// StatusError reports a gateway response code no operation contract covers.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

// Error satisfies the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request to %s returned %d", e.Method, e.Path, e.Code)
}
