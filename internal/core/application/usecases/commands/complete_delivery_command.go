package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand is the rider reporting the order was handed over.
type CompleteDeliveryCommand struct {
	riderID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(riderID, orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := errors.Join(riderID.Validate(), orderID.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{
		riderID: riderID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
