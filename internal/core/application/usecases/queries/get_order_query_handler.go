package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetOrderQueryHandler loads one order with its timeline and rider snapshot.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a UnitOfWorkFactory whose repositories read without a transaction.
func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle reads outside of a transaction; errs.ObjectNotFoundError is
// returned for an unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.orderID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return newOrderResponse(o), nil
}
