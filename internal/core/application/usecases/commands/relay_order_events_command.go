package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrRelayOrderEventsCommandIsNotConstructed = errors.New(
	"RelayOrderEventsCommand must be created via NewRelayOrderEventsCommand constructor",
)

// DefaultRelayBatchSize is how many outbox messages one relay run publishes.
const DefaultRelayBatchSize = 100

// RelayOrderEventsCommand publishes pending order events to the order feed.
type RelayOrderEventsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOrderEventsCommand(batchSize int) RelayOrderEventsCommand {
	if batchSize <= 0 {
		batchSize = DefaultRelayBatchSize
	}
	return RelayOrderEventsCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}
}

func (c RelayOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOrderEventsCommandIsNotConstructed)
}

func (c RelayOrderEventsCommand) BatchSize() int { return c.batchSize }
