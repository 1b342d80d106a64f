package jobs

import (
	"context"
	"log/slog"
	"time"

	"bookstore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob periodically cancels Pending orders that
// sat unpaid longer than the configured age, returning their stock to
// the catalog.
type StaleOrderCancellationJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger
}

// NewStaleOrderCancellationJob creates the cancellation job. The
// schedule is a standard five-field cron expression; maxAge is how old
// a Pending order may grow before the sweep cancels it.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start schedules the sweep.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started",
		"schedule", j.schedule, "maxAge", j.maxAge.String())
	return nil
}

// Stop stops the sweep.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
