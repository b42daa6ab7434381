package domain_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/testrunner/internal/domain"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func TestSupervise_ReturnsWorkResult(t *testing.T) {
	supervisor := domain.NewSupervisor(time.Second)

	value, err := domain.Supervise(context.Background(), supervisor, time.Second, func(context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestSupervise_PropagatesWorkError(t *testing.T) {
	supervisor := domain.NewSupervisor(time.Second)
	workErr := errors.New("boom")

	_, err := domain.Supervise(context.Background(), supervisor, time.Second, func(context.Context) (string, error) {
		return "", workErr
	})

	require.ErrorIs(t, err, workErr)
	assert.NotErrorIs(t, err, m.ErrTimeout)
}

func TestSupervise_TimeoutCancelsWork(t *testing.T) {
	supervisor := domain.NewSupervisor(time.Second)

	var cancelled atomic.Bool

	started := time.Now()
	value, err := domain.Supervise(context.Background(), supervisor, 20*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		cancelled.Store(true)

		return 7, ctx.Err()
	})

	require.ErrorIs(t, err, m.ErrTimeout)
	assert.Zero(t, value)
	assert.True(t, cancelled.Load())
	assert.Less(t, time.Since(started), time.Second)

	var timeoutErr *m.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 20*time.Millisecond, timeoutErr.Deadline)
}

func TestSupervise_TimeoutAbandonsStuckWork(t *testing.T) {
	supervisor := domain.NewSupervisor(10 * time.Millisecond)
	release := make(chan struct{})

	t.Cleanup(func() { close(release) })

	started := time.Now()
	_, err := domain.Supervise(context.Background(), supervisor, 10*time.Millisecond, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	require.ErrorIs(t, err, m.ErrTimeout)
	assert.Less(t, time.Since(started), time.Second)
}

func TestSupervise_ZeroDeadlineWaits(t *testing.T) {
	supervisor := domain.NewSupervisor(time.Second)

	value, err := domain.Supervise(context.Background(), supervisor, 0, func(context.Context) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, value)
}

func TestSupervise_ParentCancellationIsNotATimeout(t *testing.T) {
	supervisor := domain.NewSupervisor(time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := domain.Supervise(ctx, supervisor, time.Minute, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, m.ErrTimeout)
}

func TestSupervise_AlreadyCancelled(t *testing.T) {
	supervisor := domain.NewSupervisor(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := domain.Supervise(ctx, supervisor, time.Second, func(context.Context) (int, error) {
		called = true
		return 0, nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
