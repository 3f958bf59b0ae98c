package commands

// ExpireOffersCommandHandler is run on a schedule to drop stale offers.
type ExpireOffersCommandHandler struct {
	board OfferBoard
}

// NewExpireOffersCommandHandler creates a handler sweeping board.
func NewExpireOffersCommandHandler(board OfferBoard) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{board: board}
}

// Handle drops offers whose window has passed and returns how many were
// removed.
func (h ExpireOffersCommandHandler) Handle() int {
	return h.board.Expire()
}
