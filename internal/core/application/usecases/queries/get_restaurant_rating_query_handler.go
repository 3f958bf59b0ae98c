package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GetRestaurantRatingQueryHandler aggregates the ratings of one restaurant.
type GetRestaurantRatingQueryHandler struct {
	db      *gorm.DB
	catalog ports.RestaurantCatalog
}

// NewGetRestaurantRatingQueryHandler creates a handler for rating summaries.
// Requires a GORM database connection and the catalog to reject unknown
// restaurants.
func NewGetRestaurantRatingQueryHandler(db *gorm.DB, catalog ports.RestaurantCatalog) GetRestaurantRatingQueryHandler {
	return GetRestaurantRatingQueryHandler{db: db, catalog: catalog}
}

// Handle returns errs.ObjectNotFoundError for a restaurant missing from the
// catalog and a zero summary for one nobody has rated yet.
func (h GetRestaurantRatingQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantRatingQuery,
) (GetRestaurantRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantRatingQueryResponse{}, err
	}

	if _, err := h.catalog.Get(query.restaurantID); err != nil {
		return GetRestaurantRatingQueryResponse{}, err
	}

	var stars []int
	err := h.db.WithContext(ctx).
		Table("ratings").
		Where("restaurant_id = ?", query.restaurantID).
		Pluck("stars", &stars).Error
	if err != nil {
		return GetRestaurantRatingQueryResponse{}, err
	}

	summary := services.SummarizeRatings(stars)
	return GetRestaurantRatingQueryResponse{
		RestaurantID: query.restaurantID,
		Count:        summary.Count,
		Average:      summary.Average,
	}, nil
}
