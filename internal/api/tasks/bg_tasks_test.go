package tasks

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	bgTasks := New(newTestLogger(), 3, 10)
	bgTasks.Run()
	var runned atomic.Int32
	for i := 0; i < 5; i++ {
		assert.True(t, bgTasks.Add(func() { runned.Add(1) }))
	}
	require.NoError(t, bgTasks.Shutdown(context.Background()))
	assert.Equal(t, int32(5), runned.Load())
}

func TestAddDoesNotBlockWhenFull(t *testing.T) {
	// workers are never started, so the queue only drains on shutdown
	bgTasks := New(newTestLogger(), 1, 1)
	assert.True(t, bgTasks.Add(func() {}))

	done := make(chan bool)
	go func() { done <- bgTasks.Add(func() {}) }()
	select {
	case accepted := <-done:
		assert.False(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("Add blocked on a full queue")
	}
}

func TestAddAfterShutdown(t *testing.T) {
	bgTasks := New(newTestLogger(), 1, 1)
	bgTasks.Run()
	require.NoError(t, bgTasks.Shutdown(context.Background()))
	assert.False(t, bgTasks.Add(func() {}))
}

func TestPanicDoesNotKillWorker(t *testing.T) {
	bgTasks := New(newTestLogger(), 1, 2)
	bgTasks.Run()
	var runned atomic.Bool
	bgTasks.Add(func() { panic("boom") })
	bgTasks.Add(func() { runned.Store(true) })
	require.NoError(t, bgTasks.Shutdown(context.Background()))
	assert.True(t, runned.Load())
}

func TestShutdownTimeout(t *testing.T) {
	bgTasks := New(newTestLogger(), 1, 1)
	bgTasks.Run()
	release := make(chan struct{})
	defer close(release)
	bgTasks.Add(func() { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, bgTasks.Shutdown(ctx), context.DeadlineExceeded)
}
