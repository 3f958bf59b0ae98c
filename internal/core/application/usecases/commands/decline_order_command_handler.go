package commands

import (
	"context"
)

// DeclineOrderCommandHandler removes an offer from one rider's board.
type DeclineOrderCommandHandler struct {
	board OfferBoard
}

// NewDeclineOrderCommandHandler creates a handler backed by board alone;
// declining never touches the database.
func NewDeclineOrderCommandHandler(board OfferBoard) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{board: board}
}

// Handle removes the offer from this rider's board only. The order stays
// confirmed and keeps being offered to everyone else.
func (h DeclineOrderCommandHandler) Handle(_ context.Context, command DeclineOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return h.board.Decline(command.RiderID(), command.OrderID())
}
