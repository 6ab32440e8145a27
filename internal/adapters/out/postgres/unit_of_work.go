// Package postgres provides the GORM-based Unit of Work shared by every
// command handler.
//
// A unit of work owns one transaction. Repositories obtained after Begin run
// inside it; repositories obtained before Begin use the plain connection.
// Order repositories report the aggregates they write, and Commit stores the
// domain events of those orders in the outbox within the same transaction,
// so an event exists if and only if the change that produced it was
// committed.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance must be used by a single goroutine.
package postgres

import (
	"context"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/sessionrepo"
	"storefront/internal/adapters/out/postgres/settingsrepo"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the outbox writes
// that go with it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending order events to the outbox and commits. When the
// outbox write fails the transaction is rolled back and nothing is stored.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushEvents(ctx); err != nil {
		_ = uow.tx.Rollback().Error
		uow.tx = nil
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when there is nothing to roll back, which the deferred Rollback after a
// successful Commit ignores.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) SessionRepository() ports.SessionRepository {
	return sessionrepo.NewGormSessionRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written by a repository of this
// unit of work. Called by repository implementations.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// flushEvents moves recorded order events into the outbox. An order written
// twice is tracked twice; its events are cleared after the first write.
func (uow *GormUnitOfWork) flushEvents(ctx context.Context) error {
	outbox := outboxrepo.NewGormOutboxRepository(uow.tx)
	for _, tracked := range uow.trackedAggregates {
		o, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if err := outbox.AddOrderEvents(ctx, o.Events()); err != nil {
			return err
		}
		o.ClearEvents()
	}
	return nil
}
