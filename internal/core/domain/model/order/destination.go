package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError("Destination must be created via NewDestination")

// Destination is the delivery address. The pin is optional: customers who do
// not share their position still get their food, riders just see no distance.
type Destination struct {
	address      string
	city         string
	area         string
	instructions string
	location     *kernel.Location
	guard        guard.ConstructorGuard
}

func NewDestination(address, city, area, instructions string, location *kernel.Location) (Destination, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	area = strings.TrimSpace(area)

	var problems []error
	if address == "" {
		problems = append(problems, errs.NewValueIsRequiredError("delivery address"))
	}
	if city == "" {
		problems = append(problems, errs.NewValueIsRequiredError("delivery city"))
	}
	if area == "" {
		problems = append(problems, errs.NewValueIsRequiredError("delivery area"))
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if err := errors.Join(problems...); err != nil {
		return Destination{}, err
	}

	var pin *kernel.Location
	if location != nil {
		l := *location
		pin = &l
	}

	return Destination{
		address:      address,
		city:         city,
		area:         area,
		instructions: strings.TrimSpace(instructions),
		location:     pin,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (d Destination) Address() string { return d.address }
func (d Destination) City() string { return d.city }
func (d Destination) Area() string { return d.area }
func (d Destination) Instructions() string { return d.instructions }

// Location returns a copy of the pin, or nil when none was shared.
func (d Destination) Location() *kernel.Location {
	if d.location == nil {
		return nil
	}
	l := *d.location
	return &l
}

func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}
