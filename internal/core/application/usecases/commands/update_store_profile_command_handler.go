package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/notify"
)

// UpdateStoreProfileCommandHandler saves the store name and pickup flag.
type UpdateStoreProfileCommandHandler struct {
	uowFactory SettingsUoWFactory
	cache      ports.SettingsCache
	notifier   notify.Notifier
	logger     *slog.Logger
}

func NewUpdateStoreProfileCommandHandler(
	uowFactory SettingsUoWFactory,
	cache ports.SettingsCache,
	notifier notify.Notifier,
	logger *slog.Logger,
) UpdateStoreProfileCommandHandler {
	return UpdateStoreProfileCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		notifier:   notifier,
		logger:     logger.With("component", "update_store_profile"),
	}
}

func (h UpdateStoreProfileCommandHandler) Handle(ctx context.Context, cmd UpdateStoreProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	failure := notify.Notification{Title: "Could not save store profile"}
	if err := cmd.Actor().Require(access.ManageSettings); err != nil {
		return finish(ctx, h.notifier, err, notify.Notification{}, failure)
	}

	saved, err := changeSettings(ctx, h.uowFactory, func(current *settings.StoreSettings) error {
		return current.UpdateStoreProfile(cmd.StoreName(), cmd.PickupEnabled())
	})
	if err == nil {
		refreshSettingsCache(ctx, h.cache, saved, h.logger)
	}
	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Store profile saved", Description: cmd.StoreName()},
		failure)
}
