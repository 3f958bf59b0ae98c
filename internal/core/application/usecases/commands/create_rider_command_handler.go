package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler registers a rider in the fleet. New riders are
// available but offline until they go online.
//
// Example:
//
//	handler := NewCreateRiderCommandHandler(uowFactory)
//	cmd, _ := NewCreateRiderCommand(id, "Ramesh", "9841000000", "Bike - BA 1 PA 1", 27.71, 85.32, 4.8)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("rider registration failed: %w", err)
//	}
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider registration.
// Requires a RiderUoWFactory for transactional persistence operations.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{uowFactory: uowFactory}
}

func (h CreateRiderCommandHandler) Handle(ctx context.Context, command CreateRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	r, err := rider.NewRider(command.riderID, command.name, command.phone, command.vehicle, command.location, command.rating)
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

	if err = uow.RiderRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
