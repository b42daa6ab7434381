package domain

import (
	"context"
	"log/slog"
	"time"

	m "gooze.dev/pkg/testrunner/internal/model"
)

// DefaultGracePeriod is how long a timed out worker gets to drain after its
// context is cancelled before it is abandoned.
const DefaultGracePeriod = 10 * time.Second

type outcome[T any] struct {
	value T
	err   error
}

// Supervisor races a unit of work against a wall-clock deadline.
type Supervisor struct {
	grace time.Duration
}

// NewSupervisor returns a Supervisor abandoning timed out work after grace.
func NewSupervisor(grace time.Duration) *Supervisor {
	if grace < 0 {
		grace = 0
	}

	return &Supervisor{grace: grace}
}

// Supervise runs work on its own goroutine and blocks until it returns or
// the deadline fires. On timeout the work context is cancelled, the worker
// gets the grace period to wind down, and a *model.TimeoutError is returned
// whatever the worker produced. A deadline <= 0 disables the timer.
func Supervise[T any](
	ctx context.Context,
	s *Supervisor,
	deadline time.Duration,
	work func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so an abandoned worker can still finish.
	done := make(chan outcome[T], 1)

	go func() {
		value, err := work(workCtx)
		done <- outcome[T]{value: value, err: err}
	}()

	var expired <-chan time.Time

	if deadline > 0 {
		timer := time.NewTimer(deadline)
		defer timer.Stop()

		expired = timer.C
	}

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		cancel()
		join(s.grace, done)

		return zero, ctx.Err()
	case <-expired:
		slog.Warn("Deadline exceeded, cancelling test run", "deadline", deadline)

		cancel()
		join(s.grace, done)

		return zero, &m.TimeoutError{Deadline: deadline}
	}
}

// join waits up to the grace period for the cancelled worker.
func join[T any](grace time.Duration, done <-chan outcome[T]) {
	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		slog.Warn("Abandoning test run that did not stop in time", "grace", grace)
	}
}
