package favoriterepo

import (
	"context"
	"strings"

	"fooddelivery/internal/core/domain/model/favorite"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFavoriteRepository implements ports.FavoriteRepository using GORM.
type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Add inserts the pair and keeps the original CreatedAt when it already exists.
func (r *GormFavoriteRepository) Add(ctx context.Context, aggregate *favorite.Favorite) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

func (r *GormFavoriteRepository) Remove(ctx context.Context, userID, restaurantID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", strings.ToLower(strings.TrimSpace(userID)), strings.TrimSpace(restaurantID)).
		Delete(&FavoriteDTO{}).Error
}
