package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignedRiderIsNotConstructed = errs.NewValueIsRequiredError("AssignedRider must be created via NewAssignedRider")

// AssignedRider is the snapshot of the rider copied into the order when it is
// accepted, so the customer can see who is coming without a second lookup.
type AssignedRider struct {
	id       kernel.UUID
	name     string
	phone    string
	vehicle  string
	rating   float64
	location *kernel.Location
	guard    guard.ConstructorGuard
}

func NewAssignedRider(id kernel.UUID, name, phone, vehicle string, rating float64, location *kernel.Location) (AssignedRider, error) {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("rider name"))
	}
	if strings.TrimSpace(phone) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("rider phone"))
	}
	if err := errors.Join(problems...); err != nil {
		return AssignedRider{}, err
	}

	return AssignedRider{
		id:       id,
		name:     name,
		phone:    phone,
		vehicle:  vehicle,
		rating:   rating,
		location: copyLocation(location),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (r AssignedRider) ID() kernel.UUID { return r.id }
func (r AssignedRider) Name() string { return r.name }
func (r AssignedRider) Phone() string { return r.phone }
func (r AssignedRider) Vehicle() string { return r.vehicle }
func (r AssignedRider) Rating() float64 { return r.rating }
func (r AssignedRider) Location() *kernel.Location {
	return copyLocation(r.location)
}

func (r AssignedRider) withLocation(loc kernel.Location) AssignedRider {
	r.location = &loc
	return r
}

func (r AssignedRider) Validate() error {
	return r.guard.Validate(ErrAssignedRiderIsNotConstructed)
}

func copyLocation(l *kernel.Location) *kernel.Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
