package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
)

type UserRepository interface {
	// Add returns errs.ObjectAlreadyExistsError for a taken email or phone.
	Add(ctx context.Context, user *account.User) error

	// FindByLogin looks a user up by email (case-insensitive) or phone.
	FindByLogin(ctx context.Context, login string) (*account.User, error)
}
