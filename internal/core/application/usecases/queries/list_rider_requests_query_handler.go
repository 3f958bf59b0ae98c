package queries

import (
	"context"
	"sort"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// OfferReader is the read side of services.RequestBoard.
type OfferReader interface {
	Pending(riderID kernel.UUID) []services.Offer
}

// ListRiderRequestsQueryHandler shows a rider the offers waiting on their
// board.
type ListRiderRequestsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	board      OfferReader
}

// NewListRiderRequestsQueryHandler creates a handler for a rider's offers.
// Requires a UnitOfWorkFactory to load the rider and board to read offers.
func NewListRiderRequestsQueryHandler(uowFactory ports.UnitOfWorkFactory, board OfferReader) ListRiderRequestsQueryHandler {
	return ListRiderRequestsQueryHandler{uowFactory: uowFactory, board: board}
}

// Handle lists the rider's live offers, nearest drop-off first. Offers
// without a pinned destination sort last, oldest first.
func (h ListRiderRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListRiderRequestsQuery,
) ([]ListRiderRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	r, err := h.uowFactory.Create().RiderRepository().Get(ctx, query.riderID)
	if err != nil {
		return nil, err
	}

	offers := h.board.Pending(query.riderID)
	out := make([]ListRiderRequestsQueryResponse, 0, len(offers))
	for _, o := range offers {
		resp := ListRiderRequestsQueryResponse{
			OrderID:      o.OrderID,
			Reference:    o.Reference,
			RestaurantID: o.RestaurantID,
			Address:      o.Address,
			Area:         o.Area,
			Destination:  o.Destination,
			ItemCount:    o.ItemCount,
			Total:        o.Total,
			OfferedAt:    o.OfferedAt,
			ExpiresAt:    o.ExpiresAt,
		}
		if o.Destination != nil {
			km := r.DistanceTo(*o.Destination)
			resp.DistanceKm = &km
		}
		out = append(out, resp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DistanceKm, out[j].DistanceKm
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return out[i].OfferedAt.Before(out[j].OfferedAt)
		}
	})

	return out, nil
}
