package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/adapters/out/redis"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err = run(config, logger); err != nil {
		logger.Error("Storefront stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock, err := config.Clock()
	if err != nil {
		return err
	}

	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if err = migrations.Up(sqlDB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	redisClient := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs:    []string{config.RedisAddr},
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	defer redisClient.Close()
	if err = redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis is unreachable, settings will be read from the database", "error", err)
	}

	publisher := kafka.NewOrderEventPublisher(config.KafkaOrderChangedTopic, config.KafkaBrokers()...)
	defer publisher.Close()

	app := cmd.NewCompositionRoot(config, db, redis.NewSettingsCache(redisClient), publisher, clock, logger)

	current, created, err := app.CreateEnsureStoreSettingsCommandHandler().
		Handle(ctx, commands.NewEnsureStoreSettingsCommand())
	if err != nil {
		return fmt.Errorf("initialize store settings: %w", err)
	}
	logger.Info("Store settings ready", "store", current.StoreName(), "created", created)

	jobManager := jobs.NewJobManager(
		app.CreateRelayOrderEventsCommandHandler(),
		config.OutboxBatchSize,
		app.CreatePurgeExpiredSessionsCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newWebServer(app, config, logger)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-serveErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newWebServer(app cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	if config.SlogLevel() <= slog.LevelDebug {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.INFO)
	}

	server := httpin.NewServer(httpin.Handlers{
		Accounts:          app.CreateAccountCommandHandler(),
		Products:          app.CreateProductCommandHandler(),
		PlaceOrder:        app.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
		SaveDeliveryTiers: app.CreateSaveDeliveryTiersCommandHandler(),
		UpdateHours:       app.CreateUpdateWorkingHoursCommandHandler(),
		UpdateProfile:     app.CreateUpdateStoreProfileCommandHandler(),
		MyActions:         app.CreateMyActionsQueryHandler(),
		ListProducts:      app.CreateListProductsQueryHandler(),
		GetStoreSettings:  app.CreateGetStoreSettingsQueryHandler(),
		QuoteDeliveryFee:  app.CreateQuoteDeliveryFeeQueryHandler(),
		ListOrders:        app.CreateListOrdersQueryHandler(),
		GetOrder:          app.CreateGetOrderQueryHandler(),
		StatusOptions:     app.CreateGetOrderStatusOptionsQueryHandler(),
		ListEmployees:     app.CreateListEmployeesQueryHandler(),
	}, logger)

	if err := httpin.Mount(e, server, app.CreateAuthenticateQueryHandler(), logger); err != nil {
		return nil, err
	}
	return e, nil
}
