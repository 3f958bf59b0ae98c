package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// riderPicker chooses the rider for o inside the dispatch transaction.
type riderPicker func(ctx context.Context, riders ports.RiderRepository, o *order.Order) (*rider.Rider, error)

func riderByID(id kernel.UUID) riderPicker {
	return func(ctx context.Context, riders ports.RiderRepository, _ *order.Order) (*rider.Rider, error) {
		return riders.Get(ctx, id)
	}
}

// nearestRider picks the available rider closest to the delivery pin.
func nearestRider(ctx context.Context, riders ports.RiderRepository, o *order.Order) (*rider.Rider, error) {
	available, err := riders.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewOrderDispatcher().Nearest(o.Destination().Location(), available)
}

// dispatch attaches the picked rider to orderID in one transaction. Both
// aggregates are version-checked, so when two riders race for the same
// order, or two orders for the same rider, exactly one commit wins.
func dispatch(ctx context.Context, uowFactory UoWFactory, orderID kernel.UUID, pick riderPicker, now time.Time) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	riderRepo := uow.RiderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	r, err := pick(ctx, riderRepo, o)
	if err != nil {
		return err
	}

	if err = services.NewOrderDispatcher().Assign(o, r, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
