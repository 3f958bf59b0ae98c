package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order lifecycle events to subscribers outside
// the transaction (Kafka, live tracking streams).
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
