// Package jobs provides scheduled background tasks for the bookstore.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the store.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Periodically cancels Pending orders older
// than the configured age and returns their reserved stock to the catalog.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, schedule, maxAge, logger)
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
// The cancellation sweep uses a standard five-field cron expression taken
// from configuration, so operators choose how aggressively abandoned
// orders are reaped.
package jobs
