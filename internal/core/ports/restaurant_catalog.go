package ports

import (
	"fooddelivery/internal/core/domain/model/restaurant"
)

type RestaurantCatalog interface {
	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(id string) (restaurant.Restaurant, error)
	List() []restaurant.Restaurant
}
