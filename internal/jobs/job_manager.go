package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderEventsRelayJob *OrderEventsRelayJob
	sessionCleanupJob   *SessionCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	relayHandler OrderEventsRelayer,
	relayBatchSize int,
	purgeHandler ExpiredSessionsPurger,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderEventsRelayJob: NewOrderEventsRelayJob(relayHandler, relayBatchSize, logger),
		sessionCleanupJob:   NewSessionCleanupJob(purgeHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderEventsRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start order events relay job: %w", err)
	}

	if err := jm.sessionCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderEventsRelayJob.Stop()
		return fmt.Errorf("failed to start session cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.sessionCleanupJob.Stop()
	jm.orderEventsRelayJob.Stop()
}
