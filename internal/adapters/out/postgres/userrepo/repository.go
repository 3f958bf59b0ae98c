package userrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/adapters/out/postgres/pgerr"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts the account. Email and phone are each unique; the violated
// index decides which field is reported.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if constraint, ok := pgerr.UniqueViolation(err); ok {
		switch constraint {
		case phoneIndex:
			return errs.NewObjectAlreadyExistsErrorWithCause("phone", user.Phone(), err)
		case emailIndex:
			return errs.NewObjectAlreadyExistsErrorWithCause("email", user.Email(), err)
		default:
			return errs.NewObjectAlreadyExistsErrorWithCause("user", user.ID().String(), err)
		}
	}
	return err
}

// FindByLogin matches the login against email or phone.
func (r *GormUserRepository) FindByLogin(ctx context.Context, login string) (*account.User, error) {
	login = account.NormalizeLogin(login)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ? OR phone = ?", login, login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", login)
		}
		return nil, err
	}

	return toDomain(dto)
}
