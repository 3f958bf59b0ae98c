package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetAdminStatsQueryIsNotConstructed = errors.New(
	"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
)

// GetAdminStatsQuery feeds the admin dashboard counters.
type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAdminStatsQuery() GetAdminStatsQuery {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// GetAdminStatsQueryResponse counts every order ever placed. Revenue sums the
// totals of orders that were not cancelled; ActiveRiders counts riders free
// to take an order.
type GetAdminStatsQueryResponse struct {
	TotalOrders   int
	PendingOrders int
	ActiveRiders  int
	Revenue       int
}
