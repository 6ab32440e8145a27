// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run outside any HTTP request.
//
// # Available Jobs
//
// 1. OrderEventsRelayJob - Runs every second to publish stored order events to Kafka
// 2. SessionCleanupJob - Runs every minute to delete expired login sessions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayHandler, 100, purgeHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions (seconds first). A tick that
// fires while the previous run is still going is skipped, and a panic in
// a run is recovered and logged.
//
// # Error Handling
//
// Both jobs log failures and retry on the next tick. The relay marks an
// event published only after Kafka accepted it, so a failed batch is sent
// again and consumers must tolerate duplicates.
package jobs
