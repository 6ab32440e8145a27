package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored in the same transaction as the
// aggregate change that produced it, waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
type OutboxRepository interface {
	// GetUnpublished returns up to limit messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the order feed.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
