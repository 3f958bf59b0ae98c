package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/lucsky/cuid"
)

// PlaceOrderCommandHandler turns a checkout into a pending order.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.RestaurantCatalog
	pricing    services.Pricing
	proofs     ports.ProofStore
	clock      Clock
	eta        time.Duration
}

// NewPlaceOrderCommandHandler creates a handler for checkout.
// Requires an OrderUoWFactory for persistence, the catalog to check the
// restaurant, the pricing rules, and a ProofStore for wallet screenshots.
// eta is added to the placement time to estimate delivery.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.RestaurantCatalog,
	pricing services.Pricing,
	proofs ports.ProofStore,
	clock Clock,
	eta time.Duration,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricing:    pricing,
		proofs:     proofs,
		clock:      clock,
		eta:        eta,
	}
}

// Handle prices the cart, stores the payment proof when the method needs
// one, and persists the order in pending status. The proof is uploaded
// before the transaction starts.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.Get(command.restaurantID); err != nil {
		return err
	}

	now := h.clock.now()
	schedule, err := order.NewSchedule(command.scheduleKind, command.scheduledAt, now)
	if err != nil {
		return err
	}

	quote, err := h.pricing.Quote(command.items, command.promoCode)
	if err != nil {
		return err
	}

	proofKey := ""
	if command.paymentMethod.RequiresProof() {
		proofKey, err = h.proofs.Save(ctx, command.orderID, command.proofContentType, command.proof)
		if err != nil {
			return err
		}
	}

	payment, err := h.pricing.Payment(quote, command.paymentMethod, proofKey)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		command.orderID,
		cuid.Slug(),
		command.customer,
		command.destination,
		command.restaurantID,
		command.items,
		payment,
		schedule,
		now,
		h.eta,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
