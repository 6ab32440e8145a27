package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrEnsureStoreSettingsCommandIsNotConstructed = errors.New(
	"EnsureStoreSettingsCommand must be created via NewEnsureStoreSettingsCommand constructor",
)

// EnsureStoreSettingsCommand makes sure a settings row exists. It runs once
// at startup, before the HTTP server accepts requests.
type EnsureStoreSettingsCommand struct {
	guard guard.ConstructorGuard
}

func NewEnsureStoreSettingsCommand() EnsureStoreSettingsCommand {
	return EnsureStoreSettingsCommand{guard: guard.NewConstructorGuard()}
}

func (c EnsureStoreSettingsCommand) Validate() error {
	return c.guard.Validate(ErrEnsureStoreSettingsCommandIsNotConstructed)
}
