package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
)

// RegisterUserCommandHandler creates customer accounts with a bcrypt
// password hash.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      Clock
}

// NewRegisterUserCommandHandler creates a handler for account sign-up.
// Requires a UserUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, clock Clock) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle creates the account. Duplicate emails or phones surface as
// errs.ObjectAlreadyExistsError from the repository.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	u, err := account.RegisterUser(
		command.userID,
		command.name,
		command.email,
		command.phone,
		command.password,
		command.confirmation,
		h.clock.now(),
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

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
