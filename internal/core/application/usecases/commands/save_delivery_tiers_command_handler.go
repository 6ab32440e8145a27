package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/notify"
)

// SaveDeliveryTiersCommandHandler validates and stores the delivery fee table.
//
// Invalid tiers never reach the database: DeliveryTierValidator emits the
// single "Invalid delivery tiers" notification and the handler returns the
// validation error. Every other outcome also produces exactly one notification.
type SaveDeliveryTiersCommandHandler struct {
	uowFactory SettingsUoWFactory
	cache      ports.SettingsCache
	validator  settings.DeliveryTierValidator
	notifier   notify.Notifier
	logger     *slog.Logger
}

func NewSaveDeliveryTiersCommandHandler(
	uowFactory SettingsUoWFactory,
	cache ports.SettingsCache,
	notifier notify.Notifier,
	logger *slog.Logger,
) SaveDeliveryTiersCommandHandler {
	return SaveDeliveryTiersCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		validator:  settings.NewDeliveryTierValidator(notifier),
		notifier:   notifier,
		logger:     logger.With("component", "save_delivery_tiers"),
	}
}

func (h SaveDeliveryTiersCommandHandler) Handle(ctx context.Context, cmd SaveDeliveryTiersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	failure := notify.Notification{Title: "Could not save delivery tiers"}
	if err := cmd.Actor().Require(access.ManageSettings); err != nil {
		return finish(ctx, h.notifier, err, notify.Notification{}, failure)
	}

	tiers := cmd.Tiers()
	if !h.validator.Validate(ctx, tiers) {
		return settings.ValidateDeliveryTiers(tiers)
	}

	saved, err := changeSettings(ctx, h.uowFactory, func(current *settings.StoreSettings) error {
		return current.ReplaceDeliveryTiers(tiers)
	})
	if err == nil {
		refreshSettingsCache(ctx, h.cache, saved, h.logger)
	}
	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Delivery tiers saved"},
		failure)
}
