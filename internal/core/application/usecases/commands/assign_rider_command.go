package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand or NewAssignNearestRiderCommand constructor",
)

// AssignRiderCommand is an admin handing a confirmed order to a chosen
// rider, or to the nearest available one when no rider is named.
type AssignRiderCommand struct {
	riderID *kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(riderID, orderID kernel.UUID) (AssignRiderCommand, error) {
	if err := errors.Join(riderID.Validate(), orderID.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}
	return AssignRiderCommand{
		riderID: &riderID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func NewAssignNearestRiderCommand(orderID kernel.UUID) (AssignRiderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignRiderCommand{}, err
	}
	return AssignRiderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// RiderID is nil when the nearest available rider should be picked.
func (c AssignRiderCommand) RiderID() *kernel.UUID {
	return c.riderID
}

func (c AssignRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}
