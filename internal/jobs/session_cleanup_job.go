package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpiredSessionsPurger deletes sessions past their expiry.
type ExpiredSessionsPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredSessionsCommand) (int64, error)
}

// SessionCleanupJob removes expired sessions once a minute.
type SessionCleanupJob struct {
	handler ExpiredSessionsPurger
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewSessionCleanupJob(handler ExpiredSessionsPurger, logger *slog.Logger) *SessionCleanupJob {
	logger = logger.With("component", "session_cleanup_job")
	return &SessionCleanupJob{
		handler: handler,
		cron:    newCron(logger),
		logger:  logger,
	}
}

// Start schedules the cleanup at second zero of every minute.
func (j *SessionCleanupJob) Start() error {
	if _, err := j.cron.AddFunc("0 * * * * *", j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

func (j *SessionCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}

func (j *SessionCleanupJob) run() {
	ctx := context.Background()
	purged, err := j.handler.Handle(ctx, commands.NewPurgeExpiredSessionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session cleanup failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired sessions removed", "count", purged)
	}
}
