package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError("Payment must be created via NewPayment")

type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "cod"
	Esewa          PaymentMethod = "esewa"
	Fonepay        PaymentMethod = "fonepay"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case CashOnDelivery, Esewa, Fonepay:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", s))
	}
}

// RequiresProof reports whether the customer must upload a payment screenshot.
func (m PaymentMethod) RequiresProof() bool {
	return m == Esewa || m == Fonepay
}

// Payment is the immutable price breakdown of an order.
type Payment struct {
	method      PaymentMethod
	subtotal    int
	deliveryFee int
	discount    int
	total       int
	proofKey    string
	guard       guard.ConstructorGuard
}

// NewPayment computes the total as subtotal + deliveryFee - discount.
func NewPayment(method PaymentMethod, subtotal, deliveryFee, discount int, proofKey string) (Payment, error) {
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Payment{}, err
	}

	var problems []error
	if subtotal <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("subtotal", fmt.Errorf("%d is not positive", subtotal)))
	}
	if deliveryFee < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("delivery fee", fmt.Errorf("%d is negative", deliveryFee)))
	}
	if discount < 0 || discount > subtotal {
		problems = append(problems, errs.NewValueIsOutOfRangeError("discount", discount, 0, subtotal))
	}
	if method.RequiresProof() && strings.TrimSpace(proofKey) == "" {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("payment proof", fmt.Errorf("%s payments need a screenshot", method)))
	}
	if err := errors.Join(problems...); err != nil {
		return Payment{}, err
	}

	return Payment{
		method:      method,
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		discount:    discount,
		total:       subtotal + deliveryFee - discount,
		proofKey:    proofKey,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment rebuilds a stored breakdown and rejects rows whose total
// disagrees with the components.
func RestorePayment(method PaymentMethod, subtotal, deliveryFee, discount, total int, proofKey string) (Payment, error) {
	p, err := NewPayment(method, subtotal, deliveryFee, discount, proofKey)
	if err != nil {
		return Payment{}, err
	}
	if p.total != total {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("stored %d, computed %d", total, p.total))
	}
	return p, nil
}

func (p Payment) Method() PaymentMethod { return p.method }
func (p Payment) Subtotal() int { return p.subtotal }
func (p Payment) DeliveryFee() int { return p.deliveryFee }
func (p Payment) Discount() int { return p.discount }
func (p Payment) Total() int { return p.total }
func (p Payment) ProofKey() string { return p.proofKey }

func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}
