package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// ListFavoritesQueryHandler joins a customer's saved restaurant ids with the
// catalog.
type ListFavoritesQueryHandler struct {
	db      *gorm.DB
	catalog ports.RestaurantCatalog
}

// NewListFavoritesQueryHandler creates a handler for saved restaurants.
// Requires a GORM database connection and the catalog for display fields.
func NewListFavoritesQueryHandler(db *gorm.DB, catalog ports.RestaurantCatalog) ListFavoritesQueryHandler {
	return ListFavoritesQueryHandler{db: db, catalog: catalog}
}

type favoriteRow struct {
	RestaurantID string
	CreatedAt    time.Time
}

// Handle lists favorites newest first. Restaurants that have since left the
// catalog are skipped.
func (h ListFavoritesQueryHandler) Handle(ctx context.Context, query ListFavoritesQuery) ([]ListFavoritesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []favoriteRow
	err := h.db.WithContext(ctx).
		Table("favorites").
		Select("restaurant_id, created_at").
		Where("user_id = ?", query.userEmail).
		Order("created_at DESC, restaurant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ListFavoritesQueryResponse, 0, len(rows))
	for _, row := range rows {
		r, err := h.catalog.Get(row.RestaurantID)
		if err != nil {
			continue
		}
		out = append(out, ListFavoritesQueryResponse{
			RestaurantID: r.ID(),
			Name:         r.Name(),
			Cuisine:      r.Cuisine(),
			Area:         r.Area(),
			AddedAt:      row.CreatedAt.UTC(),
		})
	}
	return out, nil
}
