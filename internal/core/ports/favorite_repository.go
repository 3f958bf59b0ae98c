package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/favorite"
)

type FavoriteRepository interface {
	// Add stores the pair; adding an existing pair is a no-op.
	Add(ctx context.Context, aggregate *favorite.Favorite) error

	// Remove deletes the pair; removing a missing pair is a no-op.
	Remove(ctx context.Context, userID, restaurantID string) error
}
