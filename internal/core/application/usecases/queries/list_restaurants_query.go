package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

type ListRestaurantsQueryResponse struct {
	ID          string
	Name        string
	Cuisine     string
	Area        string
	Location    kernel.Location
	PriceForTwo int
	RatingCount int
	Rating      float64
}
