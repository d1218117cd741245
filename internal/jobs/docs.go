// Package jobs provides scheduled background tasks for the canteen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ReconcileFallbackJob - Periodically reloads every session's view so the
// system converges even when change notifications are lost.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessionManager, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Cron specs use six fields with a leading seconds field. The fallback poll
// interval is configured at composition time; it trades staleness window
// against database load and only matters when the notification stream is
// degraded.
package jobs
