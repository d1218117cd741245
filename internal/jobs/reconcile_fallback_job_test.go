package jobs_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"canteen/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReloader struct {
	mu    sync.Mutex
	calls int
}

func (r *countingReloader) ReloadAll(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
}

func (r *countingReloader) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestReconcileFallbackJob(t *testing.T) {
	t.Run("reloads all sessions on schedule", func(t *testing.T) {
		reloader := &countingReloader{}
		job := jobs.NewReconcileFallbackJob(reloader, "* * * * * *", slog.New(slog.DiscardHandler))

		require.NoError(t, job.Start())
		defer job.Stop()

		require.Eventually(t, func() bool {
			return reloader.callCount() >= 1
		}, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("rejects an invalid cron spec", func(t *testing.T) {
		reloader := &countingReloader{}
		job := jobs.NewReconcileFallbackJob(reloader, "not a cron spec", slog.New(slog.DiscardHandler))

		assert.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	reloader := &countingReloader{}
	jm := jobs.NewJobManager(reloader, "* * * * * *", slog.New(slog.DiscardHandler))

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
