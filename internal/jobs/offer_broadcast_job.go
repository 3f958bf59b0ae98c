package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultBroadcastSchedule re-offers waiting orders every five seconds.
const DefaultBroadcastSchedule = "*/5 * * * * *"

// OfferBroadcaster is satisfied by commands.BroadcastOffersCommandHandler.
type OfferBroadcaster interface {
	Handle(ctx context.Context) (int, error)
}

// OfferBroadcastJob offers confirmed, unassigned orders to online riders
// who have not seen them yet.
type OfferBroadcastJob struct {
	handler  OfferBroadcaster
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOfferBroadcastJob(handler OfferBroadcaster, schedule string, logger *slog.Logger) *OfferBroadcastJob {
	if schedule == "" {
		schedule = DefaultBroadcastSchedule
	}
	return &OfferBroadcastJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "offer_broadcast_job"),
	}
}

// Run performs a single broadcast pass.
func (j *OfferBroadcastJob) Run(ctx context.Context) {
	sent, err := j.handler.Handle(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Offer broadcast failed", "error", err)
		return
	}
	if sent > 0 {
		j.logger.DebugContext(ctx, "Offers sent", "count", sent)
	}
}

func (j *OfferBroadcastJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Offer broadcast job started", "schedule", j.schedule)
	return nil
}

func (j *OfferBroadcastJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Offer broadcast job stopped")
}
