package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderEventsRelayer publishes a batch of stored order events.
type OrderEventsRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error)
}

// OrderEventsRelayJob drains the order outbox to the message broker.
// Runs every second; a failed batch is retried on the next tick.
type OrderEventsRelayJob struct {
	handler   OrderEventsRelayer
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOrderEventsRelayJob(handler OrderEventsRelayer, batchSize int, logger *slog.Logger) *OrderEventsRelayJob {
	logger = logger.With("component", "order_events_relay_job")
	return &OrderEventsRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      newCron(logger),
		logger:    logger,
	}
}

// Start schedules the relay to run every second.
func (j *OrderEventsRelayJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * * *", j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order events relay job started (running every second)")
	return nil
}

// Stop waits for a running batch to finish.
func (j *OrderEventsRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order events relay job stopped")
}

func (j *OrderEventsRelayJob) run() {
	ctx := context.Background()
	published, err := j.handler.Handle(ctx, commands.NewRelayOrderEventsCommand(j.batchSize))
	if err != nil {
		j.logger.ErrorContext(ctx, "Order events relay failed", "error", err, "published", published)
		return
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Order events relayed", "published", published)
	}
}
