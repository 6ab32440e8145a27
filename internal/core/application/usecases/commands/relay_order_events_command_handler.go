package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// RelayOrderEventsCommandHandler moves order events from the outbox to the
// order feed. A message that fails to publish stays pending and is retried
// on the next run; delivery is at least once. Later messages of the same
// order are held back with it, so the feed never shows an order's events
// out of sequence.
type RelayOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewRelayOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RelayOrderEventsCommandHandler {
	return RelayOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "order_events_relay"),
	}
}

// Handle returns how many messages were published.
func (h RelayOrderEventsCommandHandler) Handle(ctx context.Context, cmd RelayOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	pending, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	published := 0
	held := make(map[kernel.UUID]struct{})
	for _, msg := range pending {
		if _, ok := held[msg.AggregateID]; ok {
			continue
		}
		if err = h.publisher.Publish(ctx, msg); err != nil {
			h.logger.WarnContext(ctx, "Failed to publish order event",
				"event_id", msg.ID.String(), "event", msg.EventName, "error", err)
			held[msg.AggregateID] = struct{}{}
			continue
		}
		if err = repo.MarkPublished(ctx, msg.ID, time.Now().UTC()); err != nil {
			return published, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return published, nil
}
