package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrQuoteOrderQueryIsNotConstructed = errors.New(
	"QuoteOrderQuery must be created via NewQuoteOrderQuery constructor",
)

// QuoteOrderQuery prices a cart before checkout, including the promo code.
type QuoteOrderQuery struct {
	items     order.Items
	promoCode string

	guard guard.ConstructorGuard
}

func NewQuoteOrderQuery(lines map[string]order.LineItem, promoCode string) (QuoteOrderQuery, error) {
	items, err := order.NewItems(lines)
	if err != nil {
		return QuoteOrderQuery{}, err
	}
	return QuoteOrderQuery{
		items:     items,
		promoCode: strings.TrimSpace(promoCode),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteOrderQuery) Validate() error {
	return q.guard.Validate(ErrQuoteOrderQueryIsNotConstructed)
}
