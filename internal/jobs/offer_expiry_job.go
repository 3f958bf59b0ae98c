package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule sweeps the request board every second.
const DefaultExpirySchedule = "* * * * * *"

// OfferExpirer is satisfied by commands.ExpireOffersCommandHandler.
type OfferExpirer interface {
	Handle() int
}

// OfferExpiryJob drops offers riders did not answer in time.
type OfferExpiryJob struct {
	handler  OfferExpirer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOfferExpiryJob(handler OfferExpirer, schedule string, logger *slog.Logger) *OfferExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	return &OfferExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "offer_expiry_job"),
	}
}

// Run performs a single sweep.
func (j *OfferExpiryJob) Run(ctx context.Context) {
	if expired := j.handler.Handle(); expired > 0 {
		j.logger.DebugContext(ctx, "Offers expired", "count", expired)
	}
}

func (j *OfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Offer expiry job started", "schedule", j.schedule)
	return nil
}

func (j *OfferExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Offer expiry job stopped")
}
