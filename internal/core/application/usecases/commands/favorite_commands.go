package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddFavoriteCommandIsNotConstructed = errors.New(
		"AddFavoriteCommand must be created via NewAddFavoriteCommand constructor",
	)
	ErrRemoveFavoriteCommandIsNotConstructed = errors.New(
		"RemoveFavoriteCommand must be created via NewRemoveFavoriteCommand constructor",
	)
)

// AddFavoriteCommand stars a restaurant for a signed-in customer.
type AddFavoriteCommand struct {
	userEmail    string
	restaurantID string

	guard guard.ConstructorGuard
}

func NewAddFavoriteCommand(userEmail, restaurantID string) (AddFavoriteCommand, error) {
	userEmail, restaurantID, err := favoritePair(userEmail, restaurantID)
	if err != nil {
		return AddFavoriteCommand{}, err
	}
	return AddFavoriteCommand{userEmail: userEmail, restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (c AddFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrAddFavoriteCommandIsNotConstructed)
}

func (c AddFavoriteCommand) RestaurantID() string { return c.restaurantID }

// RemoveFavoriteCommand unstars a restaurant.
type RemoveFavoriteCommand struct {
	userEmail    string
	restaurantID string

	guard guard.ConstructorGuard
}

func NewRemoveFavoriteCommand(userEmail, restaurantID string) (RemoveFavoriteCommand, error) {
	userEmail, restaurantID, err := favoritePair(userEmail, restaurantID)
	if err != nil {
		return RemoveFavoriteCommand{}, err
	}
	return RemoveFavoriteCommand{userEmail: userEmail, restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFavoriteCommandIsNotConstructed)
}

func favoritePair(userEmail, restaurantID string) (string, string, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	restaurantID = strings.TrimSpace(restaurantID)

	var problems []error
	if userEmail == "" {
		problems = append(problems, errs.NewValueIsRequiredError("user"))
	}
	if restaurantID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("restaurant"))
	}
	return userEmail, restaurantID, errors.Join(problems...)
}
