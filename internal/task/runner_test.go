package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunner_DefaultsWorkerCount(t *testing.T) {
	r := NewRunner(RunnerConfig{WorkerCount: -3, QueueSize: 4}, setupTestLogger())
	assert.Equal(t, 1, r.workerCount)

	r = NewRunner(DefaultRunnerConfig(), nil)
	assert.Equal(t, 1, r.workerCount)
	assert.Equal(t, 8, cap(r.queue.tasks))
}

func TestRunner_ProcessesTasks(t *testing.T) {
	r := NewRunner(RunnerConfig{WorkerCount: 2, QueueSize: 10}, setupTestLogger())
	r.Start()

	var executed atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Submit(newMockTask(func(ctx context.Context) error {
			executed.Add(1)
			return nil
		})))
	}

	require.NoError(t, r.Stop(context.Background()))
	assert.Equal(t, int32(5), executed.Load())
}

func TestRunner_ErrorHandler(t *testing.T) {
	r := NewRunner(DefaultRunnerConfig(), setupTestLogger())

	boom := errors.New("boom")
	var mu sync.Mutex
	var handled []error
	r.SetErrorHandler(func(task Task, err error) {
		mu.Lock()
		defer mu.Unlock()
		handled = append(handled, err)
	})
	r.Start()

	require.NoError(t, r.Submit(newMockTask(func(ctx context.Context) error { return boom })))
	require.NoError(t, r.Submit(newMockTask(nil)))
	require.NoError(t, r.Stop(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, handled, 1)
	assert.ErrorIs(t, handled[0], boom)
}

func TestRunner_SubmitAfterStop(t *testing.T) {
	r := NewRunner(DefaultRunnerConfig(), setupTestLogger())
	r.Start()
	require.NoError(t, r.Stop(context.Background()))

	assert.ErrorIs(t, r.Submit(newMockTask(nil)), ErrQueueClosed)
	// Stopping twice is harmless.
	assert.NoError(t, r.Stop(context.Background()))
}

func TestRunner_StopDeadlineCancelsRunningTask(t *testing.T) {
	r := NewRunner(DefaultRunnerConfig(), setupTestLogger())
	r.Start()

	started := make(chan struct{})
	require.NoError(t, r.Submit(newMockTask(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
