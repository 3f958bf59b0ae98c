// Package ratingrepo persists customer ratings. Tags are stored as a
// PostgreSQL text[] column.
package ratingrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/rating"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RatingDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       string         `gorm:"type:varchar(255);not null;index"`
	RestaurantID string         `gorm:"type:varchar(64);not null;index"`
	OrderID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_order_id"`
	Stars        int            `gorm:"type:smallint;not null"`
	Tags         pq.StringArray `gorm:"type:text[]"`
	Comment      string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"not null"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(r *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:           r.ID().Bytes(),
		UserID:       r.UserID(),
		RestaurantID: r.RestaurantID(),
		OrderID:      r.OrderID().Bytes(),
		Stars:        r.Stars(),
		Tags:         pq.StringArray(r.Tags()),
		Comment:      r.Comment(),
		CreatedAt:    r.CreatedAt(),
	}
}

