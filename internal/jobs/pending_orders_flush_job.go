package jobs

import (
	"context"
	"log/slog"

	"sendsafe/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultFlushSchedule runs the flush every thirty seconds.
const DefaultFlushSchedule = "*/30 * * * * *"

type pendingOrdersFlusher interface {
	Handle(ctx context.Context, cmd commands.FlushPendingOrdersCommand) (int, error)
}

// PendingOrdersFlushJob periodically drains the pending order queue into the repository.
type PendingOrdersFlushJob struct {
	handler  pendingOrdersFlusher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingOrdersFlushJob creates a flush job. An empty schedule selects DefaultFlushSchedule.
func NewPendingOrdersFlushJob(handler pendingOrdersFlusher, schedule string, logger *slog.Logger) *PendingOrdersFlushJob {
	if schedule == "" {
		schedule = DefaultFlushSchedule
	}
	return &PendingOrdersFlushJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_orders_flush_job"),
	}
}

// Start registers the flush on its schedule and starts the scheduler.
func (j *PendingOrdersFlushJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.flush); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders flush job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running flush to finish.
func (j *PendingOrdersFlushJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending orders flush job stopped")
}

func (j *PendingOrdersFlushJob) flush() {
	ctx := context.Background()

	flushed, err := j.handler.Handle(ctx, commands.NewFlushPendingOrdersCommand())
	if flushed > 0 {
		j.logger.InfoContext(ctx, "Pending orders stored", "count", flushed)
	}
	if err != nil {
		j.logger.WarnContext(ctx, "Pending orders still failing", "error", err)
	}
}
