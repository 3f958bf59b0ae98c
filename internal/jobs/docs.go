// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the rider request board.
//
// # Available Jobs
//
// 1. OfferBroadcastJob - Runs every five seconds to offer confirmed, unassigned orders to online riders
// 2. OfferExpiryJob - Runs every second to drop offers that were not answered within the offer window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(broadcastHandler, expireHandler, jobs.Schedules{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first) and can be
// overridden through configuration.
//
// # Error Handling
//
// - Broadcast failures are logged and retried on the next tick
// - Expiry cannot fail; it only logs how many offers it dropped
// - Failed job starts will stop any already running jobs
package jobs
