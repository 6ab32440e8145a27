package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/notify"
)

// UpdateWorkingHoursCommandHandler stores a new weekly schedule and refreshes
// the cached settings.
type UpdateWorkingHoursCommandHandler struct {
	uowFactory SettingsUoWFactory
	cache      ports.SettingsCache
	notifier   notify.Notifier
	logger     *slog.Logger
}

func NewUpdateWorkingHoursCommandHandler(
	uowFactory SettingsUoWFactory,
	cache ports.SettingsCache,
	notifier notify.Notifier,
	logger *slog.Logger,
) UpdateWorkingHoursCommandHandler {
	return UpdateWorkingHoursCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		notifier:   notifier,
		logger:     logger.With("component", "update_working_hours"),
	}
}

func (h UpdateWorkingHoursCommandHandler) Handle(ctx context.Context, cmd UpdateWorkingHoursCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	failure := notify.Notification{Title: "Could not save working hours"}
	if err := cmd.Actor().Require(access.ManageSettings); err != nil {
		return finish(ctx, h.notifier, err, notify.Notification{}, failure)
	}

	saved, err := changeSettings(ctx, h.uowFactory, func(current *settings.StoreSettings) error {
		current.UpdateWorkingHours(cmd.Hours())
		return nil
	})
	if err == nil {
		refreshSettingsCache(ctx, h.cache, saved, h.logger)
	}
	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Working hours saved"},
		failure)
}
