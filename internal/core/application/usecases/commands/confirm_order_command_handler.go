package commands

import (
	"context"
)

// ConfirmOrderCommandHandler accepts a pending order on behalf of the
// restaurant.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle moves the order from pending to confirmed. The order then becomes
// visible to the offer broadcast.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
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

	if err = o.Confirm(h.clock.now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
