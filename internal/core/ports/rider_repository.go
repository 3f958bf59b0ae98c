package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"
)

type RiderRepository interface {
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update is version-checked like OrderRepository.Update, so two orders can
	// never both make the same rider busy.
	Update(ctx context.Context, aggregate *rider.Rider) error

	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllAvailable returns riders not holding an order.
	GetAllAvailable(ctx context.Context) ([]*rider.Rider, error)
}
