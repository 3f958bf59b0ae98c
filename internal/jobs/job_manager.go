package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with seconds) of the jobs. Empty
// fields fall back to the defaults.
type Schedules struct {
	Broadcast string
	Expiry    string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	offerBroadcastJob *OfferBroadcastJob
	offerExpiryJob    *OfferExpiryJob
}

func NewJobManager(
	broadcastHandler OfferBroadcaster,
	expireHandler OfferExpirer,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobManager{
		offerBroadcastJob: NewOfferBroadcastJob(broadcastHandler, schedules.Broadcast, logger),
		offerExpiryJob:    NewOfferExpiryJob(expireHandler, schedules.Expiry, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offerExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer expiry job: %w", err)
	}

	if err := jm.offerBroadcastJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.offerExpiryJob.Stop()
		return fmt.Errorf("failed to start offer broadcast job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.offerBroadcastJob.Stop()
	jm.offerExpiryJob.Stop()
}
