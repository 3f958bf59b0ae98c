package commands

import (
	"context"
)

// SetRiderOnlineCommandHandler toggles whether a rider receives offers.
// Presence lives on the board only and is not persisted.
type SetRiderOnlineCommandHandler struct {
	uowFactory RiderUoWFactory
	board      OfferBoard
}

// NewSetRiderOnlineCommandHandler creates a handler for rider presence.
func NewSetRiderOnlineCommandHandler(uowFactory RiderUoWFactory, board OfferBoard) SetRiderOnlineCommandHandler {
	return SetRiderOnlineCommandHandler{uowFactory: uowFactory, board: board}
}

// Handle checks the rider exists and updates the board. Going offline drops
// the rider's pending offers.
func (h SetRiderOnlineCommandHandler) Handle(ctx context.Context, command SetRiderOnlineCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.uowFactory.Create().RiderRepository().Get(ctx, command.RiderID()); err != nil {
		return err
	}

	if command.Online() {
		h.board.GoOnline(command.RiderID())
	} else {
		h.board.GoOffline(command.RiderID())
	}
	return nil
}
