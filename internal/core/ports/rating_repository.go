package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
)

type RatingRepository interface {
	// Add returns errs.ObjectAlreadyExistsError when the order is already rated.
	Add(ctx context.Context, aggregate *rating.Rating) error

	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
