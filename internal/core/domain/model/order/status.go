package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	OutForDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:        "pending",
	Confirmed:      "confirmed",
	Preparing:      "preparing",
	OutForDelivery: "out_for_delivery",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
}

// transitions is the single source of truth for the order lifecycle.
// out_for_delivery -> cancelled is intentionally absent.
var transitions = map[Status][]Status{
	Pending:        {Confirmed, Cancelled},
	Confirmed:      {Preparing, Cancelled},
	Preparing:      {OutForDelivery},
	OutForDelivery: {Delivered},
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts the wire name ("out_for_delivery") back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", name))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the lifecycle allows it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move order from %s to %s", s, next),
		)
	}
	return next, nil
}

// HasRider reports whether an order in this status must carry a rider.
func (s Status) HasRider() bool {
	return s == Preparing || s == OutForDelivery || s == Delivered
}

// ValidateCanHaveRider checks the rider/status consistency invariant.
func (s Status) ValidateCanHaveRider(hasRider bool) error {
	if hasRider && !s.HasRider() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s order cannot have a rider", s))
	}
	if !hasRider && s.HasRider() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s order must have a rider", s))
	}
	return nil
}
