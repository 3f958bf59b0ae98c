package queries

import (
	"fooddelivery/internal/core/domain/services"
)

// QuoteOrderQueryHandler prices a cart without storing anything.
type QuoteOrderQueryHandler struct {
	pricing services.Pricing
}

// NewQuoteOrderQueryHandler creates a handler using the given pricing rules.
func NewQuoteOrderQueryHandler(pricing services.Pricing) QuoteOrderQueryHandler {
	return QuoteOrderQueryHandler{pricing: pricing}
}

func (h QuoteOrderQueryHandler) Handle(query QuoteOrderQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}
	return h.pricing.Quote(query.items, query.promoCode)
}
