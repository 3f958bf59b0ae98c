package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// ListRestaurantsQueryHandler serves the storefront list with live ratings.
type ListRestaurantsQueryHandler struct {
	db      *gorm.DB
	catalog ports.RestaurantCatalog
}

// NewListRestaurantsQueryHandler creates a handler for the restaurant list.
func NewListRestaurantsQueryHandler(db *gorm.DB, catalog ports.RestaurantCatalog) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db, catalog: catalog}
}

type ratingAggregate struct {
	RestaurantID string
	Count        int
	Total        int
}

// Handle joins the static catalog with live rating aggregates. Order follows
// the catalog.
func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]ListRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var aggregates []ratingAggregate
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			restaurant_id,
			COUNT(*) AS count,
			COALESCE(SUM(stars), 0) AS total
		FROM ratings
		GROUP BY restaurant_id
	`).Scan(&aggregates).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]ratingAggregate, len(aggregates))
	for _, a := range aggregates {
		byID[a.RestaurantID] = a
	}

	restaurants := h.catalog.List()
	out := make([]ListRestaurantsQueryResponse, 0, len(restaurants))
	for _, r := range restaurants {
		a := byID[r.ID()]
		summary := services.SummarizeTotals(a.Count, a.Total)
		out = append(out, ListRestaurantsQueryResponse{
			ID:          r.ID(),
			Name:        r.Name(),
			Cuisine:     r.Cuisine(),
			Area:        r.Area(),
			Location:    r.Location(),
			PriceForTwo: r.PriceForTwo(),
			RatingCount: summary.Count,
			Rating:      summary.Average,
		})
	}
	return out, nil
}
