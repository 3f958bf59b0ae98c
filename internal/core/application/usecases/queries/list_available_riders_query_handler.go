package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// ListAvailableRidersQueryHandler lists free riders, nearest first when a
// reference point is given.
type ListAvailableRidersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher services.OrderDispatcher
}

// NewListAvailableRidersQueryHandler creates a handler for free rider lookups.
func NewListAvailableRidersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListAvailableRidersQueryHandler {
	return ListAvailableRidersQueryHandler{uowFactory: uowFactory, dispatcher: services.NewOrderDispatcher()}
}

func (h ListAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableRidersQuery,
) ([]ListAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders, err := h.uowFactory.Create().RiderRepository().GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	candidates := h.dispatcher.Rank(query.near, riders)
	out := make([]ListAvailableRidersQueryResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, ListAvailableRidersQueryResponse{
			ID:         c.Rider.ID(),
			Name:       c.Rider.Name(),
			Phone:      c.Rider.Phone(),
			Vehicle:    c.Rider.Vehicle().String(),
			Location:   c.Rider.Location(),
			Rating:     c.Rider.Rating(),
			DistanceKm: c.DistanceKm,
		})
	}
	return out, nil
}
