package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories returned after Begin share its transaction. On Commit, the
// domain events of every tracked order are written to the outbox before the
// transaction is committed.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	SettingsRepository() SettingsRepository
	UserRepository() UserRepository
	SessionRepository() SessionRepository
	OutboxRepository() OutboxRepository
}
