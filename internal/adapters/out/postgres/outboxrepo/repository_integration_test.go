package outboxrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var base = time.Date(2026, 10, 14, 19, 0, 0, 0, time.UTC)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAddOrderEvents_Empty_IsNoop() {
	suite.Require().NoError(suite.repository.AddOrderEvents(context.Background(), nil))

	pending, err := suite.repository.GetUnpublished(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_OldestFirstWithLimit() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	events := []order.Event{
		suite.event(orderID, order.EventStatusChanged, order.Received, order.Preparing, base.Add(2*time.Minute)),
		suite.event(orderID, order.EventPlaced, order.Unknown, order.Received, base),
		suite.event(orderID, order.EventStatusChanged, order.Preparing, order.Delivering, base.Add(5*time.Minute)),
	}
	suite.Require().NoError(suite.repository.AddOrderEvents(ctx, events))

	pending, err := suite.repository.GetUnpublished(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID.IsEqual(events[1].ID))
	suite.True(pending[1].ID.IsEqual(events[0].ID))
	suite.True(pending[0].AggregateID.IsEqual(orderID))
	suite.True(base.Equal(pending[0].OccurredAt))

	var placed outboxrepo.OrderEventPayload
	suite.Require().NoError(json.Unmarshal(pending[0].Payload, &placed))
	suite.Equal(order.EventPlaced, placed.Event)
	suite.Empty(placed.From)
	suite.Equal("received", placed.To)
	suite.Equal(events[1].ID.String(), placed.EventID)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_SameInstantKeepsInsertionOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	events := []order.Event{
		suite.event(orderID, order.EventPlaced, order.Unknown, order.Received, base),
		suite.event(orderID, order.EventStatusChanged, order.Received, order.Preparing, base),
		suite.event(orderID, order.EventStatusChanged, order.Preparing, order.Delivering, base),
	}
	suite.Require().NoError(suite.repository.AddOrderEvents(ctx, events))

	pending, err := suite.repository.GetUnpublished(ctx, 10)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 3)
	for i := range events {
		suite.True(pending[i].ID.IsEqual(events[i].ID))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_HidesMessage() {
	ctx := context.Background()
	e := suite.event(kernel.NewUUID(), order.EventPlaced, order.Unknown, order.Received, base)
	suite.Require().NoError(suite.repository.AddOrderEvents(ctx, []order.Event{e}))

	suite.Require().NoError(suite.repository.MarkPublished(ctx, e.ID, base.Add(time.Second)))

	pending, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_Unknown_ReturnsNotFound() {
	err := suite.repository.MarkPublished(context.Background(), kernel.NewUUID(), base)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	first := suite.event(kernel.NewUUID(), order.EventPlaced, order.Unknown, order.Received, base)
	second := suite.event(kernel.NewUUID(), order.EventPlaced, order.Unknown, order.Received, base.Add(time.Minute))
	suite.Require().NoError(suite.repository.AddOrderEvents(ctx, []order.Event{first, second}))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()
	locked, err := outboxrepo.NewGormOutboxRepository(tx).GetUnpublished(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)
	suite.True(locked[0].ID.IsEqual(first.ID))

	others, err := suite.repository.GetUnpublished(ctx, 10)

	suite.Require().NoError(err)
	suite.Require().Len(others, 1)
	suite.True(others[0].ID.IsEqual(second.ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) event(
	orderID kernel.UUID,
	name string,
	from, to order.Status,
	at time.Time,
) order.Event {
	return order.Event{ID: kernel.NewUUID(), Name: name, OrderID: orderID, From: from, To: to, OccurredAt: at}
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
