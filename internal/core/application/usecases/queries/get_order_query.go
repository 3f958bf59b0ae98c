package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order for the tracking page and the admin console.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	Reference         string
	Status            string
	RestaurantID      string
	Customer          CustomerView
	Destination       DestinationView
	Items             []LineItemView
	Payment           PaymentView
	DeliveryType      string
	ScheduledAt       *time.Time
	Rider             *AssignedRiderView
	Timeline          order.Timeline
	EstimatedDelivery time.Time
	Version           int
}

type CustomerView struct {
	Name     string
	Phone    string
	AltPhone string
	Email    string
}

type DestinationView struct {
	Address      string
	City         string
	Area         string
	Instructions string
	Location     *kernel.Location
}

type LineItemView struct {
	Name      string
	UnitPrice int
	Quantity  int
	Total     int
}

type PaymentView struct {
	Method      string
	Subtotal    int
	DeliveryFee int
	Discount    int
	Total       int
	ProofKey    string
}

type AssignedRiderView struct {
	ID       kernel.UUID
	Name     string
	Phone    string
	Vehicle  string
	Rating   float64
	Location *kernel.Location
}

func newOrderResponse(o *order.Order) GetOrderQueryResponse {
	customer := o.Customer()
	destination := o.Destination()
	payment := o.Payment()

	lines := o.Items().Lines()
	items := make([]LineItemView, 0, len(lines))
	for _, name := range o.Items().Names() {
		line := lines[name]
		items = append(items, LineItemView{
			Name:      name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Total:     line.Total(),
		})
	}

	resp := GetOrderQueryResponse{
		ID:           o.ID(),
		Reference:    o.Reference(),
		Status:       o.Status().String(),
		RestaurantID: o.RestaurantID(),
		Customer: CustomerView{
			Name:     customer.Name(),
			Phone:    customer.Phone(),
			AltPhone: customer.AltPhone(),
			Email:    customer.Email(),
		},
		Destination: DestinationView{
			Address:      destination.Address(),
			City:         destination.City(),
			Area:         destination.Area(),
			Instructions: destination.Instructions(),
			Location:     destination.Location(),
		},
		Items: items,
		Payment: PaymentView{
			Method:      string(payment.Method()),
			Subtotal:    payment.Subtotal(),
			DeliveryFee: payment.DeliveryFee(),
			Discount:    payment.Discount(),
			Total:       payment.Total(),
			ProofKey:    payment.ProofKey(),
		},
		DeliveryType:      string(o.Schedule().Kind()),
		ScheduledAt:       o.Schedule().At(),
		Timeline:          o.Timeline(),
		EstimatedDelivery: o.EstimatedDelivery(),
		Version:           o.Version(),
	}

	if r := o.Rider(); r != nil {
		resp.Rider = &AssignedRiderView{
			ID:       r.ID(),
			Name:     r.Name(),
			Phone:    r.Phone(),
			Vehicle:  r.Vehicle(),
			Rating:   r.Rating(),
			Location: r.Location(),
		}
	}

	return resp
}
