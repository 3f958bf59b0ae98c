package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels orders that are still pending or confirmed.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	board      OfferBoard
	clock      Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for persistence and the board holding offers
// for the order.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, board OfferBoard, clock Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, board: board, clock: clock}
}

// Handle cancels the order and pulls any outstanding offers for it.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	if err = o.Cancel(h.clock.now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.board.Withdraw(o.ID())
	return nil
}
