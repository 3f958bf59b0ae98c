package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand registers a rider from the admin console.
type CreateRiderCommand struct {
	riderID  kernel.UUID
	name     string
	phone    string
	vehicle  rider.Vehicle
	location kernel.Location
	rating   float64

	guard guard.ConstructorGuard
}

func NewCreateRiderCommand(
	riderID kernel.UUID,
	name, phone, vehicle string,
	latitude, longitude float64,
	rating float64,
) (CreateRiderCommand, error) {
	v, vehicleErr := rider.ParseVehicle(vehicle)
	loc, locErr := kernel.NewLocation(latitude, longitude)
	if err := errors.Join(riderID.Validate(), vehicleErr, locErr); err != nil {
		return CreateRiderCommand{}, err
	}

	return CreateRiderCommand{
		riderID:  riderID,
		name:     name,
		phone:    phone,
		vehicle:  v,
		location: loc,
		rating:   rating,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

func (c CreateRiderCommand) RiderID() kernel.UUID { return c.riderID }
