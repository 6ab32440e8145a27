package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Event names as published on the order feed.
const (
	EventPlaced        = "order.placed"
	EventStatusChanged = "order.status_changed"
)

// Event is a domain event recorded by the Order aggregate and relayed to the
// realtime order feed after the transaction that produced it commits.
type Event struct {
	ID         kernel.UUID
	Name       string
	OrderID    kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}
