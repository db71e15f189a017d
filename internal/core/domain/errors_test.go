package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("MB-TEST-1000", "test message"),
			expected: "[MB-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("MB-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[MB-TEST-1001] test message: extra info",
		},
		{
			name:     "error with formatted details",
			err:      ErrInvalidConfig.WithDetailsf("workload.threads must be at least 1, got %d", 0),
			expected: "[MB-CONF-4000] invalid configuration: workload.threads must be at least 1, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err1 := NewDomainError("MB-TEST-1000", "message 1")
	err2 := NewDomainError("MB-TEST-1000", "message 2")
	err3 := NewDomainError("MB-TEST-1001", "message 1")

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-DomainError")
	}

	wrapped := fmt.Errorf("run: %w", ErrLockPoisoned.WithDetails("shard 3"))
	if !errors.Is(wrapped, ErrLockPoisoned) {
		t.Error("errors.Is should see through fmt.Errorf wrapping")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := NewDomainError("MB-TEST-1000", "wrapper").WithCause(cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if errors.Unwrap(NewDomainError("MB-TEST-1000", "no cause")) != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestDomainError_CopiesDoNotMutate(t *testing.T) {
	original := NewDomainError("MB-TEST-1000", "original message")
	_ = original.WithDetails("additional details")
	_ = original.Wrap(errors.New("cause"))

	if original.Details != "" || original.Cause != nil {
		t.Error("WithDetails/Wrap should not modify original error")
	}
}

func TestIsDomainError(t *testing.T) {
	err := ErrWorkerPanic.WithDetails("worker 2")

	if !IsDomainError(err, "") {
		t.Error("IsDomainError(err, \"\") = false, want true")
	}
	if !IsDomainError(err, "MB-RUN-5001") {
		t.Error("IsDomainError(err, MB-RUN-5001) = false, want true")
	}
	if IsDomainError(err, "MB-RUN-5000") {
		t.Error("IsDomainError(err, MB-RUN-5000) = true, want false")
	}
	if IsDomainError(errors.New("plain"), "") {
		t.Error("IsDomainError(plain) = true, want false")
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(ErrUnknownConfigKey); code != "MB-CONF-4001" {
		t.Errorf("GetErrorCode() = %q, want MB-CONF-4001", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Errorf("GetErrorCode(plain) = %q, want empty", code)
	}
}
