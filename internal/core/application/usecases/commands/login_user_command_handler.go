package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// LoginUserCommandHandler exchanges an email or phone and a password for a
// signed session token.
//
// Example:
//
//	handler := NewLoginUserCommandHandler(uowFactory, tokens)
//	cmd, _ := NewLoginUserCommand("asha@example.com", "momo-lover")
//	token, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, account.ErrInvalidCredentials) {
//	    return echo.ErrUnauthorized
//	}
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenIssuer
}

// NewLoginUserCommandHandler creates a handler for session logins.
// Requires a UserUoWFactory to look the account up and a TokenIssuer to sign
// the session.
func NewLoginUserCommandHandler(uowFactory UserUoWFactory, tokens ports.TokenIssuer) LoginUserCommandHandler {
	return LoginUserCommandHandler{uowFactory: uowFactory, tokens: tokens}
}

// Handle returns a session token. An unknown login and a wrong password both
// yield account.ErrInvalidCredentials.
func (h LoginUserCommandHandler) Handle(ctx context.Context, command LoginUserCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	u, err := h.uowFactory.Create().UserRepository().FindByLogin(ctx, command.Login())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", account.ErrInvalidCredentials
		}
		return "", err
	}

	if err = u.Authenticate(command.password); err != nil {
		return "", err
	}

	return h.tokens.Issue(u)
}
