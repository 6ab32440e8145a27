package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"
)

// EnsureStoreSettingsCommandHandler loads the store settings, creating the
// defaults (one 0-5 km tier for 5.00, 11:00-23:00 every day) on first run.
type EnsureStoreSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewEnsureStoreSettingsCommandHandler(uowFactory SettingsUoWFactory) EnsureStoreSettingsCommandHandler {
	return EnsureStoreSettingsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the settings in effect. created reports whether defaults were written.
func (h EnsureStoreSettingsCommandHandler) Handle(
	ctx context.Context,
	cmd EnsureStoreSettingsCommand,
) (current *settings.StoreSettings, created bool, err error) {
	if err = cmd.Validate(); err != nil {
		return nil, false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SettingsRepository()
	current, err = repo.Get(ctx)
	if err == nil {
		return current, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	current, err = settings.DefaultStoreSettings()
	if err != nil {
		return nil, false, err
	}

	if err = repo.Save(ctx, current); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return current, true, nil
}
