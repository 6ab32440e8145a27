package commands

import (
	"context"

	"storefront/internal/pkg/notify"
)

// finish reports the outcome of a command as exactly one notification and
// passes err through.
func finish(ctx context.Context, n notify.Notifier, err error, success, failure notify.Notification) error {
	if err != nil {
		failure.Kind = notify.Destructive
		if failure.Description == "" {
			failure.Description = err.Error()
		}
		n.Notify(ctx, failure)
		return err
	}
	success.Kind = notify.Success
	n.Notify(ctx, success)
	return nil
}
