package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// ViewReloader forces a full view reload for every live session.
type ViewReloader interface {
	ReloadAll(ctx context.Context)
}

// ReconcileFallbackJob periodically reloads every session's view regardless
// of change events. It is the safety net under the notification stream: if
// an event is lost or a listener connection silently dies, sessions still
// converge within one poll interval.
type ReconcileFallbackJob struct {
	reloader ViewReloader
	spec     string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconcileFallbackJob creates the fallback poll job with the given cron
// spec (six fields, seconds first).
func NewReconcileFallbackJob(reloader ViewReloader, spec string, logger *slog.Logger) *ReconcileFallbackJob {
	return &ReconcileFallbackJob{
		reloader: reloader,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconcile_fallback_job"),
	}
}

// Start begins the fallback poll on its configured schedule.
func (j *ReconcileFallbackJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.reloader.ReloadAll(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconcile fallback job started", "spec", j.spec)
	return nil
}

// Stop stops the fallback poll.
func (j *ReconcileFallbackJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconcile fallback job stopped")
}
