package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListRidersQueryIsNotConstructed = errors.New(
	"ListRidersQuery must be created via NewListRidersQuery constructor",
)

// ListRidersQuery lists every rider for the admin console, busy or not.
type ListRidersQuery struct {
	guard guard.ConstructorGuard
}

func NewListRidersQuery() ListRidersQuery {
	return ListRidersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

type ListRidersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	Vehicle         string
	Status          string
	Location        kernel.Location
	Rating          float64
	TotalDeliveries int
	CurrentOrderID  *kernel.UUID
}
