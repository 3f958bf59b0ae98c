package commands

import (
	"context"
)

// StartDeliveryCommandHandler records the pickup. Only the assigned rider
// may start the delivery; anyone else gets ErrOrderIsAssignedToAnotherRider.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewStartDeliveryCommandHandler creates a handler for order pickup.
// Requires an OrderUoWFactory for transactional persistence.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory, clock Clock) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h StartDeliveryCommandHandler) Handle(ctx context.Context, command StartDeliveryCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !o.IsAssignedTo(command.RiderID()) {
		return ErrOrderIsAssignedToAnotherRider
	}

	if err = o.StartDelivery(h.clock.now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
