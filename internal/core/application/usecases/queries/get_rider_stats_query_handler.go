package queries

import (
	"context"
	"math"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GetRiderStatsQueryHandler feeds the rider dashboard: deliveries, fee
// earnings and distance for one UTC day, plus the live offer count and the
// lifetime delivery total.
//
// Example:
//
//	handler := NewGetRiderStatsQueryHandler(uowFactory, db, catalog, board, nil)
//	query, _ := NewGetRiderStatsQuery(riderID, "2026-03-14")
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d deliveries, %.1f km\n", stats.Deliveries, stats.DistanceKm)
type GetRiderStatsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	db         *gorm.DB
	catalog    ports.RestaurantCatalog
	board      OfferReader
	now        func() time.Time
}

// NewGetRiderStatsQueryHandler reads the rider through uowFactory, the day's
// deliveries through db and the live offer count from board. now picks the
// day when the query leaves it empty; nil means time.Now.
func NewGetRiderStatsQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	db *gorm.DB,
	catalog ports.RestaurantCatalog,
	board OfferReader,
	now func() time.Time,
) GetRiderStatsQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetRiderStatsQueryHandler{uowFactory: uowFactory, db: db, catalog: catalog, board: board, now: now}
}

type deliveredRow struct {
	RestaurantID string
	DeliveryFee  int
	Latitude     *float64
	Longitude    *float64
}

// Handle returns errs.ObjectNotFoundError for an unknown rider.
func (h GetRiderStatsQueryHandler) Handle(ctx context.Context, query GetRiderStatsQuery) (GetRiderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRiderStatsQueryResponse{}, err
	}

	r, err := h.uowFactory.Create().RiderRepository().Get(ctx, query.riderID)
	if err != nil {
		return GetRiderStatsQueryResponse{}, err
	}

	day := query.day
	if day.IsZero() {
		day = h.now().UTC()
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	var rows []deliveredRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			restaurant_id,
			payment_delivery_fee AS delivery_fee,
			destination_latitude AS latitude,
			destination_longitude AS longitude
		FROM orders
		WHERE rider_id = ?
			AND status = ?
			AND delivered_at >= ?
			AND delivered_at < ?
	`, query.riderID.Bytes(), order.Delivered.String(), from, to).Scan(&rows).Error
	if err != nil {
		return GetRiderStatsQueryResponse{}, err
	}

	stats := GetRiderStatsQueryResponse{
		RiderID:         r.ID(),
		Day:             from.Format(DayLayout),
		Deliveries:      len(rows),
		PendingRequests: len(h.board.Pending(r.ID())),
		TotalDeliveries: r.TotalDeliveries(),
	}

	distance := 0.0
	for _, row := range rows {
		stats.Earnings += row.DeliveryFee
		if row.Latitude == nil || row.Longitude == nil {
			continue
		}
		restaurant, err := h.catalog.Get(row.RestaurantID)
		if err != nil {
			continue
		}
		dropOff, err := kernel.NewLocation(*row.Latitude, *row.Longitude)
		if err != nil {
			continue
		}
		distance += restaurant.Location().DistanceTo(dropOff)
	}
	stats.DistanceKm = math.Round(distance*10) / 10

	return stats, nil
}
