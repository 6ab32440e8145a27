package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var ErrPurgeExpiredSessionsCommandIsNotConstructed = errors.New(
	"PurgeExpiredSessionsCommand must be created via NewPurgeExpiredSessionsCommand constructor",
)

// PurgeExpiredSessionsCommand deletes sessions past their expiry.
type PurgeExpiredSessionsCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeExpiredSessionsCommand() PurgeExpiredSessionsCommand {
	return PurgeExpiredSessionsCommand{guard: guard.NewConstructorGuard()}
}

func (c PurgeExpiredSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredSessionsCommandIsNotConstructed)
}

// PurgeExpiredSessionsCommandHandler removes expired sessions.
type PurgeExpiredSessionsCommandHandler struct {
	uowFactory AccountUoWFactory
	clock      func() time.Time
}

func NewPurgeExpiredSessionsCommandHandler(uowFactory AccountUoWFactory, clock func() time.Time) PurgeExpiredSessionsCommandHandler {
	return PurgeExpiredSessionsCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns how many sessions were removed.
func (h PurgeExpiredSessionsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredSessionsCommand) (int64, error) {
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

	removed, err := uow.SessionRepository().DeleteExpired(ctx, h.clock())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
