package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantRatingQueryIsNotConstructed = errors.New(
	"GetRestaurantRatingQuery must be created via NewGetRestaurantRatingQuery constructor",
)

type GetRestaurantRatingQuery struct {
	restaurantID string

	guard guard.ConstructorGuard
}

func NewGetRestaurantRatingQuery(restaurantID string) (GetRestaurantRatingQuery, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return GetRestaurantRatingQuery{}, errs.NewValueIsRequiredError("restaurant")
	}
	return GetRestaurantRatingQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantRatingQueryIsNotConstructed)
}

// GetRestaurantRatingQueryResponse carries the count and the mean rounded to
// one decimal.
type GetRestaurantRatingQueryResponse struct {
	RestaurantID string
	Count        int
	Average      float64
}
