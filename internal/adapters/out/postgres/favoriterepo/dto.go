// Package favoriterepo persists starred restaurants, one row per customer and
// restaurant.
package favoriterepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/favorite"
)

type FavoriteDTO struct {
	UserID       string    `gorm:"type:varchar(255);primaryKey"`
	RestaurantID string    `gorm:"type:varchar(64);primaryKey"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (FavoriteDTO) TableName() string {
	return "favorites"
}

func fromDomain(f *favorite.Favorite) FavoriteDTO {
	return FavoriteDTO{
		UserID:       f.UserID(),
		RestaurantID: f.RestaurantID(),
		CreatedAt:    f.CreatedAt(),
	}
}
