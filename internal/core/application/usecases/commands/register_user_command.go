package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

type RegisterUserCommand struct {
	userID       kernel.UUID
	name         string
	email        string
	phone        string
	password     string
	confirmation string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	name, email, phone, password, confirmation string,
) (RegisterUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}
	return RegisterUserCommand{
		userID:       userID,
		name:         name,
		email:        email,
		phone:        phone,
		password:     password,
		confirmation: confirmation,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
