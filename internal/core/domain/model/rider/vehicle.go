package rider

import (
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrVehicleIsNotConstructed = errs.NewValueIsRequiredError("Vehicle must be created via NewVehicle or ParseVehicle")

const vehicleSeparator = " - "

// Vehicle is what the rider drives and its registration plate.
type Vehicle struct {
	kind  string
	plate string
	guard guard.ConstructorGuard
}

func NewVehicle(kind, plate string) (Vehicle, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("vehicle kind")
	}
	return Vehicle{
		kind:  kind,
		plate: strings.TrimSpace(plate),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseVehicle reads the display form, e.g. "Bike - BA 12 PA 3456".
// A string without a plate is accepted as a bare kind.
func ParseVehicle(s string) (Vehicle, error) {
	kind, plate, _ := strings.Cut(s, vehicleSeparator)
	return NewVehicle(kind, plate)
}

func (v Vehicle) Kind() string { return v.kind }
func (v Vehicle) Plate() string { return v.plate }

func (v Vehicle) String() string {
	if v.plate == "" {
		return v.kind
	}
	return v.kind + vehicleSeparator + v.plate
}

func (v Vehicle) Validate() error {
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}
