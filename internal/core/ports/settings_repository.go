package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/settings"
)

// ErrCacheMiss is returned by caches when nothing is stored under the key.
var ErrCacheMiss = errors.New("cache miss")

// SettingsRepository stores the single StoreSettings row.
type SettingsRepository interface {
	// Get returns errs.ObjectNotFoundError until settings are first saved.
	Get(ctx context.Context) (*settings.StoreSettings, error)

	// Save inserts or replaces the settings, delivery tiers included.
	Save(ctx context.Context, s *settings.StoreSettings) error
}

// SettingsCache keeps a read copy of the store settings.
//
// Callers treat every cache error as a miss and fall back to the repository.
type SettingsCache interface {
	Get(ctx context.Context) (*settings.StoreSettings, error)
	// Set must not replace a cached copy with a later UpdatedAt, so a read
	// that loaded settings before a save cannot undo the save's refresh.
	Set(ctx context.Context, s *settings.StoreSettings) error
	Delete(ctx context.Context) error
}
