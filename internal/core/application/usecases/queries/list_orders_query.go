package queries

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first. Both filters are optional: the
// admin console filters by status, the customer's history by email.
type ListOrdersQuery struct {
	status        *order.Status
	customerEmail string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts a status name ("" for all) and an email
// ("" for all customers).
func NewListOrdersQuery(status, customerEmail string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		customerEmail: strings.ToLower(strings.TrimSpace(customerEmail)),
		guard:         guard.NewConstructorGuard(),
	}
	if status = strings.TrimSpace(status); status != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &s
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one row of the order list.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	Reference     string
	Status        string
	CustomerName  string
	CustomerEmail string
	Area          string
	RestaurantID  string
	Total         int
	PaymentMethod string
	RiderName     *string
	CreatedAt     time.Time
}
