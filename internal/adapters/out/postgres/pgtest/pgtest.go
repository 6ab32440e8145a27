// Package pgtest starts a throwaway PostgreSQL container with the storefront
// schema for integration tests.
package pgtest

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every application table, for TRUNCATE between tests.
const Tables = "outbox, order_items, orders, sessions, users, products, delivery_tiers, store_settings"

// Start runs postgres:15-alpine, applies the migrations and returns a GORM
// connection configured like production.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return container, nil, err
	}
	if err = migrations.Up(sqlDB); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every application table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}
