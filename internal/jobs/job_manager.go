package jobs

import (
	"log/slog"
)

// Job is a background task with an explicit lifecycle.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops every background job as a unit.
type JobManager struct {
	jobs []Job
}

// NewJobManager creates the manager with the service's jobs.
func NewJobManager(flushHandler pendingOrdersFlusher, flushSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs: []Job{
			NewPendingOrdersFlushJob(flushHandler, flushSchedule, logger),
		},
	}
}

// StartAll starts the jobs in order. If one fails, the ones already started are stopped.
func (m *JobManager) StartAll() error {
	for i, job := range m.jobs {
		if err := job.Start(); err != nil {
			for _, started := range m.jobs[:i] {
				started.Stop()
			}
			return err
		}
	}
	return nil
}

// StopAll stops the jobs in reverse start order.
func (m *JobManager) StopAll() {
	for i := len(m.jobs) - 1; i >= 0; i-- {
		m.jobs[i].Stop()
	}
}
