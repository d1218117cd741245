package jobs

import (
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconcileFallbackJob *ReconcileFallbackJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reloader ViewReloader, fallbackSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		reconcileFallbackJob: NewReconcileFallbackJob(reloader, fallbackSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	return jm.reconcileFallbackJob.Start()
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.reconcileFallbackJob.Stop()
}
