package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DeliveryOrder_RoundTrips() {
	ctx := context.Background()
	address, err := kernel.NewAddress("Rua das Flores", "120", "apto 3", "Centro", "Recife", "50000-000")
	suite.Require().NoError(err)
	burger, err := order.NewLineItem(kernel.NewUUID(), "X-Burger", 2, 20, []order.Extra{{Name: "bacon", Price: 3}})
	suite.Require().NoError(err)
	soda, err := order.NewLineItem(kernel.NewUUID(), "Refri", 1, 6, nil)
	suite.Require().NoError(err)
	createdAt := time.Date(2026, 10, 14, 20, 15, 0, 0, time.UTC)
	placed, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{burger, soda}, 8,
		order.Cartao, address, createdAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", placed.ID(), placed).Once()

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	loaded, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(placed.ID()))
	suite.True(loaded.CustomerID().IsEqual(placed.CustomerID()))
	suite.Equal(order.Received, loaded.Status())
	suite.Equal(order.Cartao, loaded.PaymentMethod())
	suite.InDelta(8.0, loaded.DeliveryFee(), 1e-9)
	suite.InDelta(placed.Total(), loaded.Total(), 1e-9)
	suite.True(createdAt.Equal(loaded.CreatedAt()))
	suite.False(loaded.Address().IsPickup())
	suite.Equal("apto 3", loaded.Address().Complement())
	suite.Require().Len(loaded.Items(), 2)
	suite.Equal("X-Burger", loaded.Items()[0].Name())
	suite.Equal([]order.Extra{{Name: "bacon", Price: 3}}, loaded.Items()[0].Extras())
	suite.Equal("Refri", loaded.Items()[1].Name())
	suite.Empty(loaded.Events(), "loading must not replay events")
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PickupOrder_RoundTrips() {
	ctx := context.Background()
	placed := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", placed.ID(), placed).Once()

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	loaded, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.True(loaded.Address().IsPickup())
	suite.Zero(loaded.DeliveryFee())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	loaded, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(loaded)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	ctx := context.Background()
	placed := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", placed.ID(), placed).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	suite.Require().NoError(placed.ChangeStatus(order.Preparing, access.Employee))
	suite.Require().NoError(suite.repository.Update(ctx, placed))
	suite.Require().NoError(placed.ChangeStatus(order.Delivering, access.Employee))
	suite.Require().NoError(suite.repository.Update(ctx, placed))

	loaded, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivering, loaded.Status())
	suite.Len(loaded.Items(), 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), "Pizza", 1, 45, nil)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, 0,
		order.Pix, kernel.PickupAddress(), time.Date(2026, 10, 14, 19, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
