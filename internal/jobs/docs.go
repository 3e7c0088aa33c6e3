// Package jobs provides scheduled background tasks for the booking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingOrdersFlushJob - retries order appends that failed during booking
// confirmation and were parked in the pending queue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(flushHandler, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first). The flush schedule
// comes from configuration; the default runs every thirty seconds.
//
// # Error Handling
//
// - An empty queue is not logged
// - Orders that fail again stay queued and the failure is logged as a warning
// - Failed job starts will stop any already running jobs
package jobs
