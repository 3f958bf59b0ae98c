package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DefaultETA is added to the creation time to estimate delivery.
const DefaultETA = 35 * time.Minute

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Timeline holds the moment each lifecycle state was entered.
type Timeline struct {
	CreatedAt        time.Time
	ConfirmedAt      *time.Time
	PreparingAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - rider is set exactly when status is preparing, out_for_delivery or delivered
//   - payment subtotal equals the items subtotal, and the total never changes
//   - status only moves along the transitions defined by Status
type Order struct {
	id                kernel.UUID
	reference         string
	customer          Customer
	destination       Destination
	restaurantID      string
	items             Items
	payment           Payment
	schedule          Schedule
	status            Status
	rider             *AssignedRider
	timeline          Timeline
	estimatedDelivery time.Time
	version           int
	events            []StatusChanged
	isConstructed     bool
}

// NewOrder creates a pending order at checkout.
func NewOrder(
	id kernel.UUID,
	reference string,
	customer Customer,
	destination Destination,
	restaurantID string,
	items Items,
	payment Payment,
	schedule Schedule,
	createdAt time.Time,
	eta time.Duration,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setCustomer(customer),
		o.setDestination(destination),
		o.setRestaurantID(restaurantID),
		o.setItemsAndPayment(items, payment),
	); err != nil {
		return nil, err
	}

	if eta <= 0 {
		eta = DefaultETA
	}
	createdAt = createdAt.UTC()
	o.schedule = schedule
	o.timeline = Timeline{CreatedAt: createdAt}
	o.estimatedDelivery = createdAt.Add(eta)
	o.record(createdAt)

	return o, nil
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	ID                kernel.UUID
	Reference         string
	Customer          Customer
	Destination       Destination
	RestaurantID      string
	Items             Items
	Payment           Payment
	Schedule          Schedule
	Status            Status
	Rider             *AssignedRider
	Timeline          Timeline
	EstimatedDelivery time.Time
	Version           int
}

// RestoreOrder rebuilds an order from storage, checking the invariants that
// NewOrder would have enforced.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(p.ID),
		o.setReference(p.Reference),
		o.setCustomer(p.Customer),
		o.setDestination(p.Destination),
		o.setRestaurantID(p.RestaurantID),
		o.setItemsAndPayment(p.Items, p.Payment),
		p.Status.Validate(),
		p.Status.ValidateCanHaveRider(p.Rider != nil),
	); err != nil {
		return nil, err
	}
	if p.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is below 1", p.Version))
	}

	if p.Rider != nil {
		r := *p.Rider
		o.rider = &r
	}
	o.schedule = p.Schedule
	o.status = p.Status
	o.timeline = p.Timeline
	o.estimatedDelivery = p.EstimatedDelivery
	o.version = p.Version

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Reference() string { return o.reference }
func (o *Order) Customer() Customer { return o.customer }
func (o *Order) Destination() Destination { return o.destination }
func (o *Order) RestaurantID() string { return o.restaurantID }
func (o *Order) Items() Items { return o.items }
func (o *Order) Payment() Payment { return o.payment }
func (o *Order) Schedule() Schedule { return o.schedule }
func (o *Order) Status() Status { return o.status }
func (o *Order) Timeline() Timeline { return o.timeline }
func (o *Order) EstimatedDelivery() time.Time { return o.estimatedDelivery }

// Version is the optimistic concurrency counter as last loaded or saved.
func (o *Order) Version() int { return o.version }

// AdvanceVersion is called by the repository after a successful conditional
// update so the in-memory aggregate matches the stored row.
func (o *Order) AdvanceVersion() { o.version++ }

// Rider returns a copy of the assigned rider snapshot, or nil.
func (o *Order) Rider() *AssignedRider {
	if o.rider == nil {
		return nil
	}
	r := *o.rider
	return &r
}

// IsAwaitingRider reports whether the order can be offered to riders.
func (o *Order) IsAwaitingRider() bool {
	return o.status == Confirmed && o.rider == nil
}

func (o *Order) IsAssignedTo(riderID kernel.UUID) bool {
	return o.rider != nil && o.rider.id.IsEqual(riderID)
}

// BelongsTo matches the checkout email against a signed-in customer.
func (o *Order) BelongsTo(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	return email != "" && o.customer.email == email
}

// Confirm is the admin accepting a pending order.
func (o *Order) Confirm(now time.Time) error {
	if err := o.transition(Confirmed, now); err != nil {
		return err
	}
	t := now.UTC()
	o.timeline.ConfirmedAt = &t
	return nil
}

// Cancel is allowed from pending and confirmed only.
func (o *Order) Cancel(now time.Time) error {
	if err := o.transition(Cancelled, now); err != nil {
		return err
	}
	t := now.UTC()
	o.timeline.CancelledAt = &t
	return nil
}

// AssignRider hands a confirmed order to a rider and starts preparation.
// Used both when a rider accepts a broadcast offer and when an admin assigns
// one manually.
func (o *Order) AssignRider(rider AssignedRider, now time.Time) error {
	if err := rider.Validate(); err != nil {
		return err
	}
	if o.rider != nil {
		return errs.NewValueIsInvalidErrorWithCause("rider", fmt.Errorf("order %s already has rider %s", o.reference, o.rider.name))
	}
	next, err := o.status.TransitionTo(Preparing)
	if err != nil {
		return err
	}

	o.rider = &rider
	o.status = next
	t := now.UTC()
	o.timeline.PreparingAt = &t
	o.record(now)
	return nil
}

// StartDelivery marks the food as picked up.
func (o *Order) StartDelivery(now time.Time) error {
	if err := o.transition(OutForDelivery, now); err != nil {
		return err
	}
	t := now.UTC()
	o.timeline.OutForDeliveryAt = &t
	return nil
}

// Complete marks the order as handed over to the customer.
func (o *Order) Complete(now time.Time) error {
	if err := o.transition(Delivered, now); err != nil {
		return err
	}
	t := now.UTC()
	o.timeline.DeliveredAt = &t
	return nil
}

// MoveRider mirrors the rider's live position into the snapshot.
func (o *Order) MoveRider(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if o.rider == nil {
		return errs.NewValueIsInvalidErrorWithCause("rider", fmt.Errorf("order %s has no rider", o.reference))
	}
	moved := o.rider.withLocation(location)
	o.rider = &moved
	return nil
}

// PullDomainEvents returns the events recorded since the last call, stamped
// with the current version, and clears them.
func (o *Order) PullDomainEvents() []StatusChanged {
	events := o.events
	o.events = nil
	for i := range events {
		events[i].Version = o.version
	}
	return events
}

func (o *Order) transition(next Status, now time.Time) error {
	status, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = status
	o.record(now)
	return nil
}

func (o *Order) record(now time.Time) {
	var riderID *kernel.UUID
	if o.rider != nil {
		id := o.rider.id
		riderID = &id
	}
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		Reference:  o.reference,
		Status:     o.status,
		RiderID:    riderID,
		OccurredAt: now.UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setCustomer(c Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setDestination(d Destination) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.destination = d
	return nil
}

func (o *Order) setRestaurantID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("restaurant")
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItemsAndPayment(items Items, payment Payment) error {
	if items.lines == nil {
		return errs.NewValueIsRequiredError("items")
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	if items.Subtotal() != payment.Subtotal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("items add up to %d but payment says %d", items.Subtotal(), payment.Subtotal()),
		)
	}
	o.items = items
	o.payment = payment
	return nil
}
