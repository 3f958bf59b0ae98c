package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"
)

// SubmitRatingCommandHandler stores a customer's rating of a delivered
// order. The rating counts towards the restaurant's average.
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	clock      Clock
}

// NewSubmitRatingCommandHandler creates a handler for order ratings.
// Requires a RatingUoWFactory spanning orders and ratings.
func NewSubmitRatingCommandHandler(uowFactory RatingUoWFactory, clock Clock) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle records the rating once the order is delivered. A second rating for
// the same order is rejected here and, for concurrent submissions, by the
// unique index behind RatingRepository.Add.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, command SubmitRatingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, command.orderID)
	if err != nil {
		return err
	}

	if !o.BelongsTo(command.userEmail) {
		return ErrOrderBelongsToAnotherCustomer
	}

	if o.Status() != order.Delivered {
		return ErrOrderIsNotDelivered
	}

	ratingRepo := uow.RatingRepository()
	exists, err := ratingRepo.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("rating for order", o.Reference())
	}

	r, err := rating.NewRating(
		command.ratingID,
		command.userEmail,
		o.RestaurantID(),
		o.ID(),
		command.stars,
		command.tags,
		command.comment,
		h.clock.now(),
	)
	if err != nil {
		return err
	}

	if err = ratingRepo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
