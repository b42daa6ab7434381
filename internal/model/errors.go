package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout reports that a run exceeded its deadline. No result is returned.
	ErrTimeout = errors.New("deadline exceeded")
	// ErrResolution reports that a named package or test could not be found.
	ErrResolution = errors.New("resolution failed")
	// ErrExecution reports an engine-level fault such as a build failure.
	ErrExecution = errors.New("execution failed")
	// ErrInvalidLookup reports a query for a test absent from the queried category.
	ErrInvalidLookup = errors.New("invalid lookup")
)

// TimeoutError is returned when the supervised run did not finish in time.
type TimeoutError struct {
	Deadline time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("test run exceeded deadline of %s", e.Deadline)
}

// Unwrap makes errors.Is(err, ErrTimeout) hold.
func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

// ExecutionError carries the underlying cause of an engine fault along with
// whatever diagnostic output the engine produced.
type ExecutionError struct {
	Cause  error
	Output string
}

func (e *ExecutionError) Error() string {
	msg := ErrExecution.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	if e.Output != "" {
		msg += "\n" + e.Output
	}

	return msg
}

// Unwrap exposes both ErrExecution and the cause to errors.Is and errors.As.
func (e *ExecutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrExecution}
	}

	return []error{ErrExecution, e.Cause}
}

// NewExecutionError wraps cause as an ExecutionError.
func NewExecutionError(cause error, output string) *ExecutionError {
	return &ExecutionError{Cause: cause, Output: output}
}

// ResolutionErrorf formats an error wrapping ErrResolution.
func ResolutionErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrResolution, fmt.Sprintf(format, args...))
}
