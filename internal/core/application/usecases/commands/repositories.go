// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// SettingsUoW manages transactions that only touch store settings.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// CatalogUoW manages transactions that only touch products.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// AccountUoW manages transactions over users and their sessions.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// OrderUoW manages checkout and status changes. Checkout reads products and
	// settings inside the same transaction that stores the order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   store, err := uow.SettingsRepository().Get(ctx)
	//   products, err := uow.ProductRepository().GetMany(ctx, ids)
	//   // ... price the cart
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		SettingsRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW manages relaying of stored order events.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
