package commands

import (
	"context"
)

// UpdateRiderLocationCommandHandler applies a position report from the
// rider app.
type UpdateRiderLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateRiderLocationCommandHandler creates a handler for rider movement.
// Requires a UoWFactory for coordinating updates across order and rider repositories.
func NewUpdateRiderLocationCommandHandler(uowFactory UoWFactory) UpdateRiderLocationCommandHandler {
	return UpdateRiderLocationCommandHandler{uowFactory: uowFactory}
}

// Handle moves the rider and, while they carry an order, copies the position
// into the order so the customer can track it.
func (h UpdateRiderLocationCommandHandler) Handle(ctx context.Context, command UpdateRiderLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	r, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if err = r.MoveTo(command.Location()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return err
	}

	if orderID := r.CurrentOrderID(); orderID != nil {
		orderRepo := uow.OrderRepository()
		o, getErr := orderRepo.Get(ctx, *orderID)
		if getErr != nil {
			return getErr
		}
		if err = o.MoveRider(command.Location()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
