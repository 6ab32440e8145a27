package cmd

import (
	"log/slog"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/notify"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.SettingsCache
	publisher  ports.EventPublisher
	notifier   notify.Notifier
	clock      func() time.Time
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cache ports.SettingsCache,
	publisher ports.EventPublisher,
	clock func() time.Time,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		publisher:  publisher,
		notifier:   notify.NewContextNotifier(logger),
		clock:      clock,
		logger:     logger,
	}
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateEnsureStoreSettingsCommandHandler() commands.EnsureStoreSettingsCommandHandler {
	return commands.NewEnsureStoreSettingsCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateSaveDeliveryTiersCommandHandler() commands.SaveDeliveryTiersCommandHandler {
	return commands.NewSaveDeliveryTiersCommandHandler(c.settingsUoWFactory(), c.cache, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateWorkingHoursCommandHandler() commands.UpdateWorkingHoursCommandHandler {
	return commands.NewUpdateWorkingHoursCommandHandler(c.settingsUoWFactory(), c.cache, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateStoreProfileCommandHandler() commands.UpdateStoreProfileCommandHandler {
	return commands.NewUpdateStoreProfileCommandHandler(c.settingsUoWFactory(), c.cache, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateProductCommandHandler() commands.ProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProductCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAccountCommandHandler() commands.AccountCommandHandler {
	return commands.NewAccountCommandHandler(c.accountUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreatePurgeExpiredSessionsCommandHandler() commands.PurgeExpiredSessionsCommandHandler {
	return commands.NewPurgeExpiredSessionsCommandHandler(c.accountUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRelayOrderEventsCommandHandler() commands.RelayOrderEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOrderEventsCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetStoreSettingsQueryHandler() queries.GetStoreSettingsQueryHandler {
	repo := c.uowFactory.Create().SettingsRepository()
	return queries.NewGetStoreSettingsQueryHandler(repo, c.cache, c.clock, c.logger)
}

func (c *CompositionRoot) CreateQuoteDeliveryFeeQueryHandler() queries.QuoteDeliveryFeeQueryHandler {
	return queries.NewQuoteDeliveryFeeQueryHandler(c.CreateGetStoreSettingsQueryHandler())
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusOptionsQueryHandler() queries.GetOrderStatusOptionsQueryHandler {
	return queries.NewGetOrderStatusOptionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEmployeesQueryHandler() queries.ListEmployeesQueryHandler {
	return queries.NewListEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateMyActionsQueryHandler() queries.MyActionsQueryHandler {
	return queries.NewMyActionsQueryHandler()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
