package commands

import (
	"context"
)

// AssignRiderCommandHandler is the admin override of the offer flow. It
// attaches either the named rider or the nearest available one to a
// confirmed order.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
	board      OfferBoard
	clock      Clock
}

// NewAssignRiderCommandHandler creates a handler for manual assignment.
func NewAssignRiderCommandHandler(uowFactory UoWFactory, board OfferBoard, clock Clock) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{uowFactory: uowFactory, board: board, clock: clock}
}

// Handle assigns the rider exactly as if they had accepted the offer
// themselves: the order goes to preparing and the rider becomes busy.
// Without a named rider the available rider nearest to the delivery pin is
// used, or the first available one for orders without a pin.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var pick riderPicker = nearestRider
	if id := command.RiderID(); id != nil {
		pick = riderByID(*id)
	}

	if err := dispatch(ctx, h.uowFactory, command.OrderID(), pick, h.clock.now()); err != nil {
		return err
	}

	h.board.Withdraw(command.OrderID())
	return nil
}
