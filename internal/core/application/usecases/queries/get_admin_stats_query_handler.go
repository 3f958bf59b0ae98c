package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

// GetAdminStatsQueryHandler computes the admin dashboard counters straight
// from the orders and riders tables. Revenue leaves cancelled orders out.
//
// Example:
//
//	handler := NewGetAdminStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, NewGetAdminStatsQuery())
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d pending of %d orders\n", stats.PendingOrders, stats.TotalOrders)
type GetAdminStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminStatsQueryHandler creates a handler for dashboard counters.
// Requires a GORM database connection for query execution.
func NewGetAdminStatsQueryHandler(db *gorm.DB) GetAdminStatsQueryHandler {
	return GetAdminStatsQueryHandler{db: db}
}

func (h GetAdminStatsQueryHandler) Handle(ctx context.Context, query GetAdminStatsQuery) (GetAdminStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	var stats GetAdminStatsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = ?) AS pending_orders,
			COALESCE(SUM(payment_total) FILTER (WHERE status <> ?), 0) AS revenue
		FROM orders
	`, order.Pending.String(), order.Cancelled.String()).Scan(&stats).Error
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	var active int64
	err = h.db.WithContext(ctx).
		Table("riders").
		Where("status = ?", rider.Available.String()).
		Count(&active).Error
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}
	stats.ActiveRiders = int(active)

	return stats, nil
}
