package services

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// DefaultDeliveryFee is the flat fee in rupees added to every order.
const DefaultDeliveryFee = 50

// DefaultPromoCodes maps a code to its flat discount in rupees.
func DefaultPromoCodes() map[string]int {
	return map[string]int{
		"SAVE10":    10,
		"WELCOME20": 20,
		"FIRST50":   50,
	}
}

// Quote is the price breakdown shown before checkout.
type Quote struct {
	Subtotal    int
	DeliveryFee int
	Discount    int
	Total       int
	PromoCode   string
}

type Pricing struct {
	deliveryFee int
	promoCodes  map[string]int
}

// NewPricing copies codes; lookups are case-insensitive.
func NewPricing(deliveryFee int, codes map[string]int) Pricing {
	normalized := make(map[string]int, len(codes))
	for code, discount := range codes {
		normalized[strings.ToUpper(strings.TrimSpace(code))] = discount
	}
	return Pricing{deliveryFee: deliveryFee, promoCodes: normalized}
}

func (p Pricing) DeliveryFee() int {
	return p.deliveryFee
}

// Quote prices items. An empty promo code means no discount; an unknown one
// is rejected so the customer learns about the typo before paying. The
// discount never exceeds the subtotal.
func (p Pricing) Quote(items order.Items, promoCode string) (Quote, error) {
	subtotal := items.Subtotal()
	if subtotal <= 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	code := strings.ToUpper(strings.TrimSpace(promoCode))
	discount := 0
	if code != "" {
		d, ok := p.promoCodes[code]
		if !ok {
			return Quote{}, errs.NewValueIsInvalidErrorWithCause("promo code", fmt.Errorf("%q is not a valid code", promoCode))
		}
		discount = min(d, subtotal)
	}

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: p.deliveryFee,
		Discount:    discount,
		Total:       subtotal + p.deliveryFee - discount,
		PromoCode:   code,
	}, nil
}

// Payment freezes a quote into the order's payment breakdown.
func (p Pricing) Payment(q Quote, method order.PaymentMethod, proofKey string) (order.Payment, error) {
	return order.NewPayment(method, q.Subtotal, q.DeliveryFee, q.Discount, proofKey)
}
