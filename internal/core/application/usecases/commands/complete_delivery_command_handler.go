package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler closes a delivery for the assigned rider.
// The order and the rider are updated in the same transaction, so the rider
// only becomes available again together with the delivered order.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory, clock)
//	cmd, _ := NewCompleteDeliveryCommand(riderID, orderID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrForbidden) {
//	    return fmt.Errorf("not your delivery: %w", err)
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory for coordinating updates across order and rider repositories.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory, clock Clock) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle marks the order delivered and frees the rider for the next offer.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	riderRepo := uow.RiderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !o.IsAssignedTo(command.RiderID()) {
		return ErrOrderIsAssignedToAnotherRider
	}

	r, err := riderRepo.Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	if err = o.Complete(h.clock.now()); err != nil {
		return err
	}

	if err = r.Release(o.ID()); err != nil {
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
