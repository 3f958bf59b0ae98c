package commands

import (
	"context"
)

// AcceptOrderCommandHandler lets a rider claim a broadcast offer.
// The order moves to preparing with the rider attached, and the rider
// becomes busy, in one transaction. Both aggregates carry a version so
// concurrent claims on the same order resolve to a single winner.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, board, clock)
//	cmd, _ := NewAcceptOrderCommand(riderID, orderID)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, errs.ErrValueIsInvalid):
//	    log.Println("Another rider was faster")
//	case err != nil:
//	    log.Printf("Accept failed: %v", err)
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	board      OfferBoard
	clock      Clock
}

// NewAcceptOrderCommandHandler creates a handler for offer claims.
// Requires a UoWFactory spanning orders and riders and the board to withdraw
// the order from once it is taken.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, board OfferBoard, clock Clock) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory, board: board, clock: clock}
}

// Handle lets the first rider to accept win. Later accepts fail either on
// the status check (the order is already preparing) or, when they raced the
// winner, on the version check at update time. The winner's order is then
// withdrawn from every board.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := dispatch(ctx, h.uowFactory, command.OrderID(), riderByID(command.RiderID()), h.clock.now()); err != nil {
		return err
	}

	h.board.Withdraw(command.OrderID())
	return nil
}
