package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the programs.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorInput    = 3   // Indicates the console input was closed before a value was read.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorOverflow = 5   // Indicates a result does not fit the integer width.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputClosedError reports that the console stream ended (or failed) while a
// line was still expected. It is never retried.
type InputClosedError struct {
	// Cause is the underlying read error, usually io.EOF.
	Cause error
}

// Error returns a message naming the read failure.
func (e InputClosedError) Error() string {
	return fmt.Sprintf("failed to read line: %v", e.Cause)
}

// Unwrap returns the underlying read error.
func (e InputClosedError) Unwrap() error { return e.Cause }

// OverflowError reports that the requested term of a sequence does not fit
// in the result's integer width.
type OverflowError struct {
	// N is the requested index.
	N uint64
	// Limit is the largest index whose value is representable.
	Limit uint64
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("term %d overflows a 64-bit unsigned integer (largest representable index is %d)", e.N, e.Limit)
}

// IndexError reports an index outside the bounds of a fixed-size list.
type IndexError struct {
	// Index is the requested position.
	Index int
	// Len is the length of the list that was indexed.
	Len int
}

// Error returns a formatted message describing the bounds violation.
func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by a program run to its exit code.
// A nil error maps to ExitSuccess; unknown errors map to ExitErrorGeneric.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		configErr   ConfigError
		inputErr    InputClosedError
		overflowErr OverflowError
		timeoutErr  TimeoutError
	)
	switch {
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &inputErr):
		return ExitErrorInput
	case errors.As(err, &overflowErr):
		return ExitErrorOverflow
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	}
	return ExitErrorGeneric
}
