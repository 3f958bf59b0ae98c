package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

type OrderRepository interface {
	// Add persists a new order. The id must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes guarded by the aggregate's version. When the row
	// was changed by someone else since it was loaded, the update affects no
	// rows and errs.VersionIsInvalidError is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingRider returns confirmed orders without a rider, oldest
	// first. These are the orders the broadcast job offers to riders.
	GetAllAwaitingRider(ctx context.Context) ([]*order.Order, error)
}
