package notify

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// Fanout publishes to every wrapped publisher, even when one fails, and
// joins the errors.
type Fanout []ports.OrderEventPublisher

func (f Fanout) Publish(ctx context.Context, events ...order.StatusChanged) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
