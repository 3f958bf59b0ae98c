package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand accepts either an email or a phone number as login.
type LoginUserCommand struct {
	login    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginUserCommand(login, password string) (LoginUserCommand, error) {
	login = account.NormalizeLogin(login)

	var problems []error
	if login == "" {
		problems = append(problems, errs.NewValueIsRequiredError("login"))
	}
	if strings.TrimSpace(password) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(problems...); err != nil {
		return LoginUserCommand{}, err
	}

	return LoginUserCommand{
		login:    login,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Login() string { return c.login }
