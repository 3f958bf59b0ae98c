package queries

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrListFavoritesQueryIsNotConstructed = errors.New(
	"ListFavoritesQuery must be created via NewListFavoritesQuery constructor",
)

// ListFavoritesQuery returns the restaurants a customer starred.
type ListFavoritesQuery struct {
	userEmail string

	guard guard.ConstructorGuard
}

func NewListFavoritesQuery(userEmail string) (ListFavoritesQuery, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	if userEmail == "" {
		return ListFavoritesQuery{}, errs.NewValueIsRequiredError("user")
	}
	return ListFavoritesQuery{userEmail: userEmail, guard: guard.NewConstructorGuard()}, nil
}

func (q ListFavoritesQuery) Validate() error {
	return q.guard.Validate(ErrListFavoritesQueryIsNotConstructed)
}

type ListFavoritesQueryResponse struct {
	RestaurantID string
	Name         string
	Cuisine      string
	Area         string
	AddedAt      time.Time
}
