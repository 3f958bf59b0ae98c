// Package userrepo persists customer accounts. Only the bcrypt hash of the
// password is ever stored.
package userrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	emailIndex = "idx_users_email"
	phoneIndex = "idx_users_phone"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Phone        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_users_phone"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *account.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return account.RestoreUser(id, dto.Name, dto.Email, dto.Phone, dto.PasswordHash, dto.CreatedAt.UTC())
}
