package commands

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderParams is the raw checkout form.
type PlaceOrderParams struct {
	OrderID kernel.UUID

	CustomerName  string
	CustomerPhone string
	AltPhone      string
	Email         string

	Address      string
	City         string
	Area         string
	Instructions string
	Latitude     *float64
	Longitude    *float64

	RestaurantID string
	Items        map[string]order.LineItem
	PromoCode    string

	PaymentMethod    string
	Proof            []byte
	ProofContentType string

	DeliveryType string
	ScheduledAt  *time.Time
}

// PlaceOrderCommand is a validated checkout.
type PlaceOrderCommand struct {
	orderID          kernel.UUID
	customer         order.Customer
	destination      order.Destination
	restaurantID     string
	items            order.Items
	promoCode        string
	paymentMethod    order.PaymentMethod
	proof            []byte
	proofContentType string
	scheduleKind     order.ScheduleKind
	scheduledAt      *time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the form and reports every problem at once.
// The scheduled time is checked by the handler, which owns the clock.
func NewPlaceOrderCommand(p PlaceOrderParams) (PlaceOrderCommand, error) {
	var problems []error

	if err := p.OrderID.Validate(); err != nil {
		problems = append(problems, err)
	}

	customer, err := order.NewCustomer(p.CustomerName, p.CustomerPhone, p.AltPhone, p.Email)
	problems = append(problems, err)

	var pin *kernel.Location
	switch {
	case p.Latitude != nil && p.Longitude != nil:
		loc, locErr := kernel.NewLocation(*p.Latitude, *p.Longitude)
		if locErr != nil {
			problems = append(problems, locErr)
		} else {
			pin = &loc
		}
	case p.Latitude != nil || p.Longitude != nil:
		problems = append(problems, errs.NewValueIsRequiredError("both latitude and longitude"))
	}

	destination, err := order.NewDestination(p.Address, p.City, p.Area, p.Instructions, pin)
	problems = append(problems, err)

	restaurantID := strings.TrimSpace(p.RestaurantID)
	if restaurantID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("restaurant"))
	}

	items, err := order.NewItems(p.Items)
	problems = append(problems, err)

	method, err := order.ParsePaymentMethod(p.PaymentMethod)
	problems = append(problems, err)
	if err == nil && method.RequiresProof() && len(p.Proof) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("payment proof"))
	}

	kind := order.ScheduleKind(strings.ToLower(strings.TrimSpace(p.DeliveryType)))
	if kind == "" {
		kind = order.ASAP
	}

	if err = errors.Join(problems...); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID:          p.OrderID,
		customer:         customer,
		destination:      destination,
		restaurantID:     restaurantID,
		items:            items,
		promoCode:        strings.TrimSpace(p.PromoCode),
		paymentMethod:    method,
		proof:            p.Proof,
		proofContentType: p.ProofContentType,
		scheduleKind:     kind,
		scheduledAt:      p.ScheduledAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
