package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// BroadcastOffersCommandHandler pushes every confirmed, unassigned order to
// the boards of online riders who are free to take it and have not seen it
// yet. It only reads, so no transaction is opened.
type BroadcastOffersCommandHandler struct {
	uowFactory UoWFactory
	board      OfferBoard
}

// NewBroadcastOffersCommandHandler returns a handler reading orders and
// riders through uowFactory and publishing offers to board.
func NewBroadcastOffersCommandHandler(uowFactory UoWFactory, board OfferBoard) BroadcastOffersCommandHandler {
	return BroadcastOffersCommandHandler{uowFactory: uowFactory, board: board}
}

// Handle returns how many new offers were created.
func (h BroadcastOffersCommandHandler) Handle(ctx context.Context) (int, error) {
	uow := h.uowFactory.Create()

	orders, err := uow.OrderRepository().GetAllAwaitingRider(ctx)
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	riders, err := uow.RiderRepository().GetAllAvailable(ctx)
	if err != nil {
		return 0, err
	}
	available := make([]kernel.UUID, 0, len(riders))
	for _, r := range riders {
		available = append(available, r.ID())
	}

	offered := 0
	for _, o := range orders {
		offered += h.board.Broadcast(o, available)
	}
	return offered, nil
}
