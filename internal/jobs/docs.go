// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish staged domain events from the outbox
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, batchSize, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps event delivery latency low without
// coupling publication to the request path.
//
// # Error Handling
//
// - Relay failures are logged and retried on the next tick; messages stay
//   pending until the publisher accepts them, so delivery is at-least-once
// - Failed job starts will stop any already running jobs
package jobs
