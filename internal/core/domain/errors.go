// Package domain defines the core value types of mapbench.
package domain

import (
	"errors"
	"fmt"
)

// DomainError is an error carrying a stable error code.
type DomainError struct {
	Code    string // Error code (e.g., "MB-CONF-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrInvalidConfig indicates a parameter failed to parse or is out of range.
	ErrInvalidConfig = NewDomainError("MB-CONF-4000", "invalid configuration")

	// ErrUnknownConfigKey indicates the configuration named a key mapbench does not know.
	ErrUnknownConfigKey = NewDomainError("MB-CONF-4001", "unknown configuration key")

	// ErrUnknownModel indicates the requested store model does not exist.
	ErrUnknownModel = NewDomainError("MB-CONF-4002", "unknown model")
)

// ============================================================================
// Run Errors (RUN)
// ============================================================================

var (
	// ErrLockPoisoned indicates a shard lock was poisoned by a panicking worker.
	ErrLockPoisoned = NewDomainError("MB-RUN-5000", "shard lock poisoned")

	// ErrWorkerPanic indicates a worker terminated abnormally.
	ErrWorkerPanic = NewDomainError("MB-RUN-5001", "worker panicked")

	// ErrWorkerFailed indicates a worker stopped on a store error.
	ErrWorkerFailed = NewDomainError("MB-RUN-5003", "worker failed")

	// ErrOutput indicates the result could not be written.
	ErrOutput = NewDomainError("MB-OUT-5002", "result output failed")
)
