package commands_test

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context) (*settings.StoreSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.StoreSettings) error {
	return m.Called(ctx, s).Error(0)
}

type MockSettingsCache struct{ mock.Mock }

func (m *MockSettingsCache) Get(ctx context.Context) (*settings.StoreSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.StoreSettings), args.Error(1)
}

func (m *MockSettingsCache) Set(ctx context.Context, s *settings.StoreSettings) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettingsCache) Delete(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *account.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, roles ...access.Role) ([]*account.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.User), args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s account.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, token string) (account.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(account.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	return m.Called().Get(0).(ports.SettingsRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) SessionRepository() ports.SessionRepository {
	return m.Called().Get(0).(ports.SessionRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	return m.Called().Get(0).(commands.SettingsUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	return m.Called().Get(0).(commands.AccountUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

func actorOf(role access.Role, perms access.Permissions) access.Actor {
	return access.NewActor(kernel.NewUUID(), role, perms)
}

// fixedClock returns a Wednesday evening, inside default working hours.
func fixedClock() time.Time {
	return time.Date(2026, 10, 14, 20, 0, 0, 0, time.UTC)
}
