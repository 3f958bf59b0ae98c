package rider

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")

	// ErrRiderIsBusy is returned when an order is attached to a rider who
	// already holds one.
	ErrRiderIsBusy = errs.NewValueIsInvalidErrorWithCause("rider", errors.New("rider is busy with another order"))
)

// Rider is the aggregate root for a delivery rider.
type Rider struct {
	id              kernel.UUID
	name            string
	phone           string
	vehicle         Vehicle
	status          Status
	location        kernel.Location
	rating          float64
	totalDeliveries int
	currentOrderID  *kernel.UUID
	version         int
	isConstructed   bool
}

// NewRider registers an available rider.
func NewRider(id kernel.UUID, name, phone string, vehicle Vehicle, location kernel.Location, rating float64) (*Rider, error) {
	r := &Rider{
		status:        Available,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
		r.setVehicle(vehicle),
		r.setLocation(location),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

type RestoreParams struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	Vehicle         Vehicle
	Status          Status
	Location        kernel.Location
	Rating          float64
	TotalDeliveries int
	CurrentOrderID  *kernel.UUID
	Version         int
}

// RestoreRider rebuilds a rider from storage.
func RestoreRider(p RestoreParams) (*Rider, error) {
	r, err := NewRider(p.ID, p.Name, p.Phone, p.Vehicle, p.Location, p.Rating)
	if err != nil {
		return nil, err
	}

	if err = p.Status.Validate(); err != nil {
		return nil, err
	}
	if (p.Status == Busy) != (p.CurrentOrderID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("rider status",
			fmt.Errorf("%s rider with current order %v", p.Status, p.CurrentOrderID))
	}
	if p.TotalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total deliveries", fmt.Errorf("%d is negative", p.TotalDeliveries))
	}
	if p.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is below 1", p.Version))
	}

	r.status = p.Status
	r.totalDeliveries = p.TotalDeliveries
	if p.CurrentOrderID != nil {
		id := *p.CurrentOrderID
		r.currentOrderID = &id
	}
	r.version = p.Version
	return r, nil
}

func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Rider) ID() kernel.UUID { return r.id }
func (r *Rider) Name() string { return r.name }
func (r *Rider) Phone() string { return r.phone }
func (r *Rider) Vehicle() Vehicle { return r.vehicle }
func (r *Rider) Status() Status { return r.status }
func (r *Rider) Location() kernel.Location { return r.location }
func (r *Rider) Rating() float64 { return r.rating }
func (r *Rider) TotalDeliveries() int { return r.totalDeliveries }
func (r *Rider) Version() int { return r.version }

// AdvanceVersion is called by the repository after a conditional update.
func (r *Rider) AdvanceVersion() { r.version++ }

func (r *Rider) CurrentOrderID() *kernel.UUID {
	if r.currentOrderID == nil {
		return nil
	}
	id := *r.currentOrderID
	return &id
}

func (r *Rider) IsAvailable() bool {
	return r.status == Available
}

// Occupy attaches an order and marks the rider busy.
func (r *Rider) Occupy(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if r.status != Available {
		return ErrRiderIsBusy
	}
	r.status = Busy
	r.currentOrderID = &orderID
	return nil
}

// Release detaches a delivered order, counts the delivery and frees the rider.
func (r *Rider) Release(orderID kernel.UUID) error {
	if r.currentOrderID == nil || !r.currentOrderID.IsEqual(orderID) {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("rider %s does not hold order %s", r.name, orderID))
	}
	r.status = Available
	r.currentOrderID = nil
	r.totalDeliveries++
	return nil
}

// MoveTo records a new position reported by the rider's device.
func (r *Rider) MoveTo(location kernel.Location) error {
	return r.setLocation(location)
}

// DistanceTo returns the haversine distance in kilometres from the rider's
// current position.
func (r *Rider) DistanceTo(target kernel.Location) float64 {
	return r.location.DistanceTo(target)
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("rider name")
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("rider phone")
	}
	r.phone = phone
	return nil
}

func (r *Rider) setVehicle(v Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	r.vehicle = v
	return nil
}

func (r *Rider) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *Rider) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
