package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand is a signed-in customer rating a delivered order.
type SubmitRatingCommand struct {
	ratingID  kernel.UUID
	userEmail string
	orderID   kernel.UUID
	stars     int
	tags      []string
	comment   string

	guard guard.ConstructorGuard
}

func NewSubmitRatingCommand(
	ratingID kernel.UUID,
	userEmail string,
	orderID kernel.UUID,
	stars int,
	tags []string,
	comment string,
) (SubmitRatingCommand, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	var problems []error
	problems = append(problems, ratingID.Validate(), orderID.Validate())
	if userEmail == "" {
		problems = append(problems, errs.NewValueIsRequiredError("user"))
	}
	if stars < rating.MinStars || stars > rating.MaxStars {
		problems = append(problems, errs.NewValueIsOutOfRangeError("stars", stars, rating.MinStars, rating.MaxStars))
	}
	if err := errors.Join(problems...); err != nil {
		return SubmitRatingCommand{}, err
	}

	return SubmitRatingCommand{
		ratingID:  ratingID,
		userEmail: userEmail,
		orderID:   orderID,
		stars:     stars,
		tags:      append([]string(nil), tags...),
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

func (c SubmitRatingCommand) RatingID() kernel.UUID { return c.ratingID }
