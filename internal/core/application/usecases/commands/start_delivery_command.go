package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand is the rider reporting the food was picked up.
type StartDeliveryCommand struct {
	riderID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartDeliveryCommand(riderID, orderID kernel.UUID) (StartDeliveryCommand, error) {
	if err := errors.Join(riderID.Validate(), orderID.Validate()); err != nil {
		return StartDeliveryCommand{}, err
	}
	return StartDeliveryCommand{
		riderID: riderID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

func (c StartDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c StartDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
