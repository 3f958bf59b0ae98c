package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand is a rider dismissing an offer.
type DeclineOrderCommand struct {
	riderID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeclineOrderCommand(riderID, orderID kernel.UUID) (DeclineOrderCommand, error) {
	if err := errors.Join(riderID.Validate(), orderID.Validate()); err != nil {
		return DeclineOrderCommand{}, err
	}
	return DeclineOrderCommand{
		riderID: riderID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

func (c DeclineOrderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c DeclineOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
