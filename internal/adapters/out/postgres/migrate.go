package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/favoriterepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/ratingrepo"
	"fooddelivery/internal/adapters/out/postgres/riderrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the orders, riders, ratings, users and favorites
// tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&riderrepo.RiderDTO{},
		&ratingrepo.RatingDTO{},
		&userrepo.UserDTO{},
		&favoriterepo.FavoriteDTO{},
	)
}
