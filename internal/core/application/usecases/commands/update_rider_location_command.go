package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateRiderLocationCommandIsNotConstructed = errors.New(
	"UpdateRiderLocationCommand must be created via NewUpdateRiderLocationCommand constructor",
)

type UpdateRiderLocationCommand struct {
	riderID  kernel.UUID
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateRiderLocationCommand(riderID kernel.UUID, latitude, longitude float64) (UpdateRiderLocationCommand, error) {
	loc, err := kernel.NewLocation(latitude, longitude)
	if err = errors.Join(riderID.Validate(), err); err != nil {
		return UpdateRiderLocationCommand{}, err
	}
	return UpdateRiderLocationCommand{
		riderID:  riderID,
		location: loc,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRiderLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderLocationCommandIsNotConstructed)
}

func (c UpdateRiderLocationCommand) RiderID() kernel.UUID { return c.riderID }
func (c UpdateRiderLocationCommand) Location() kernel.Location { return c.location }
