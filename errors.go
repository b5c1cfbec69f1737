package bucketmap

import (
	"errors"
	"fmt"
)

// Error represents a bucketmap usage error with a structured error code.
type Error struct {
	Code    string // Error code (e.g., "BM-ARGS-0001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// newError creates a new Error with the given code and message.
func newError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// IsError checks if an error is a bucketmap Error with the given code.
// If code is empty, it only checks if the error is a bucketmap Error.
func IsError(err error, code string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return code == "" || e.Code == code
}

// Construction errors.
var (
	// ErrInvalidBucketCount is returned by New when the bucket count
	// is zero or negative.
	ErrInvalidBucketCount = newError("BM-ARGS-0001", "bucket count must be positive")

	// ErrNilHasher is returned by New when WithHasher was given a nil
	// hasher.
	ErrNilHasher = newError("BM-ARGS-0002", "hasher must not be nil")
)
