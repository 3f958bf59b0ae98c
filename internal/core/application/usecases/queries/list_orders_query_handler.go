package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns order summaries newest first, optionally
// narrowed to one status or one customer.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery("pending", "")
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d orders awaiting confirmation\n", len(pending))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Select(`id, reference, status, customer_name, customer_email, destination_area,
			restaurant_id, payment_total, payment_method, rider_name, created_at`)
	if query.status != nil {
		tx = tx.Where("status = ?", query.status.String())
	}
	if query.customerEmail != "" {
		tx = tx.Where("customer_email = ?", query.customerEmail)
	}

	rows, err := tx.Order("created_at DESC").Order("reference").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var o ListOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&o.Reference,
			&o.Status,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.Area,
			&o.RestaurantID,
			&o.Total,
			&o.PaymentMethod,
			&o.RiderName,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID
		o.CreatedAt = o.CreatedAt.UTC()
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
