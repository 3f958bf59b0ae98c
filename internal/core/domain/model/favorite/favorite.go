// Package favorite records the restaurants a customer has starred.
package favorite

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"
)

var ErrFavoriteIsNotConstructed = errors.New("Favorite must be created via NewFavorite")

// Favorite pairs a customer, identified by email like ratings are, with a
// catalog restaurant. A pair exists at most once.
type Favorite struct {
	userID       string
	restaurantID string
	createdAt    time.Time

	isConstructed bool
}

func NewFavorite(userID, restaurantID string, createdAt time.Time) (*Favorite, error) {
	userID = strings.ToLower(strings.TrimSpace(userID))
	restaurantID = strings.TrimSpace(restaurantID)

	var problems []error
	if userID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("user"))
	}
	if restaurantID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("restaurant"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Favorite{
		userID:        userID,
		restaurantID:  restaurantID,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (f *Favorite) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFavoriteIsNotConstructed
	}
	return nil
}

func (f *Favorite) UserID() string       { return f.userID }
func (f *Favorite) RestaurantID() string { return f.restaurantID }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }
