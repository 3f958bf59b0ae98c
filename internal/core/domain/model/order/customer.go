package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("Customer must be created via NewCustomer")

// Customer is the contact block captured at checkout. Email is optional and
// is what ties an order to a signed-in account.
type Customer struct {
	name     string
	phone    string
	altPhone string
	email    string
	guard    guard.ConstructorGuard
}

func NewCustomer(name, phone, altPhone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.ToLower(strings.TrimSpace(email))

	var problems []error
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customer name"))
	}
	if phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customer phone"))
	}
	if email != "" && !strings.Contains(email, "@") {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("customer email", fmt.Errorf("%q is not an email address", email)))
	}
	if err := errors.Join(problems...); err != nil {
		return Customer{}, err
	}

	return Customer{
		name:     name,
		phone:    phone,
		altPhone: strings.TrimSpace(altPhone),
		email:    email,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c Customer) Name() string { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) AltPhone() string { return c.altPhone }
func (c Customer) Email() string { return c.email }

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
