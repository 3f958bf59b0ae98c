package ratingrepo

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/pgerr"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Add inserts the rating. A second rating for the same order violates the
// unique index and is reported as errs.ObjectAlreadyExistsError.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return errs.NewObjectAlreadyExistsErrorWithCause("rating for order", aggregate.OrderID().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormRatingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RatingDTO{}).Where("order_id = ?", orderID.Bytes()).Count(&count).Error
	return count > 0, err
}

