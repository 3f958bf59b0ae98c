package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListAvailableRidersQueryIsNotConstructed = errors.New(
	"ListAvailableRidersQuery must be created via NewListAvailableRidersQuery constructor",
)

// ListAvailableRidersQuery feeds the admin's manual assignment picker. With a
// point given, riders come nearest first.
type ListAvailableRidersQuery struct {
	near *kernel.Location

	guard guard.ConstructorGuard
}

// NewListAvailableRidersQuery takes optional coordinates; both or neither
// must be set.
func NewListAvailableRidersQuery(latitude, longitude *float64) (ListAvailableRidersQuery, error) {
	q := ListAvailableRidersQuery{guard: guard.NewConstructorGuard()}
	switch {
	case latitude != nil && longitude != nil:
		loc, err := kernel.NewLocation(*latitude, *longitude)
		if err != nil {
			return ListAvailableRidersQuery{}, err
		}
		q.near = &loc
	case latitude != nil || longitude != nil:
		return ListAvailableRidersQuery{}, ErrCoordinatesComeInPairs
	}
	return q, nil
}

func (q ListAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableRidersQueryIsNotConstructed)
}

type ListAvailableRidersQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Phone      string
	Vehicle    string
	Location   kernel.Location
	Rating     float64
	DistanceKm *float64
}
