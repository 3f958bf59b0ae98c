package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListRiderRequestsQueryIsNotConstructed = errors.New(
	"ListRiderRequestsQuery must be created via NewListRiderRequestsQuery constructor",
)

// ListRiderRequestsQuery returns the offers currently on a rider's board.
type ListRiderRequestsQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListRiderRequestsQuery(riderID kernel.UUID) (ListRiderRequestsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return ListRiderRequestsQuery{}, err
	}
	return ListRiderRequestsQuery{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRiderRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListRiderRequestsQueryIsNotConstructed)
}

type ListRiderRequestsQueryResponse struct {
	OrderID      kernel.UUID
	Reference    string
	RestaurantID string
	Address      string
	Area         string
	Destination  *kernel.Location
	ItemCount    int
	Total        int
	DistanceKm   *float64
	OfferedAt    time.Time
	ExpiresAt    time.Time
}
