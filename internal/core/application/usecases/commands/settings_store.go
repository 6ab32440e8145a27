package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/ports"
)

// changeSettings loads the settings, applies change and saves them in one
// transaction. It returns the committed settings.
func changeSettings(
	ctx context.Context,
	uowFactory SettingsUoWFactory,
	change func(*settings.StoreSettings) error,
) (*settings.StoreSettings, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SettingsRepository()
	current, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err = change(current); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return current, nil
}

// refreshSettingsCache writes committed settings through to the cache. The
// cache keeps the later of two snapshots, so a read racing the save cannot
// put the old settings back. When the write fails the entry is dropped.
func refreshSettingsCache(ctx context.Context, cache ports.SettingsCache, saved *settings.StoreSettings, logger *slog.Logger) {
	err := cache.Set(ctx, saved)
	if err == nil {
		return
	}
	logger.WarnContext(ctx, "Failed to refresh settings cache", "error", err)

	if err = cache.Delete(ctx); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate settings cache", "error", err)
	}
}
