package ports

import (
	"fooddelivery/internal/core/domain/model/account"
)

// TokenIssuer signs the session record handed to a customer after login.
type TokenIssuer interface {
	Issue(user *account.User) (string, error)
}
