package jobs

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger lets cron report skipped and panicking runs through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// newCron builds a seconds-resolution scheduler. A run still in progress
// when the next tick fires makes that tick a no-op.
func newCron(logger *slog.Logger) *cron.Cron {
	l := cronLogger{logger: logger}
	return cron.New(
		cron.WithSeconds(),
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)
}
