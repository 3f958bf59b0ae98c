// Package account models customer accounts. Passwords are kept only as
// bcrypt hashes.
package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the most bcrypt will hash, in bytes.
	MaxPasswordLength = 72
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via RegisterUser or RestoreUser")

	// ErrInvalidCredentials covers both an unknown login and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash []byte
	createdAt    time.Time

	isConstructed bool
}

// RegisterUser validates the signup form and hashes the password.
func RegisterUser(id kernel.UUID, name, email, phone, password, confirmation string, createdAt time.Time) (*User, error) {
	u := &User{createdAt: createdAt.UTC(), isConstructed: true}

	var problems []error
	problems = append(problems, u.setIdentity(id, name, email, phone))
	switch {
	case len(password) < MinPasswordLength:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength)))
	case len(password) > MaxPasswordLength:
		problems = append(problems, errs.NewValueIsOutOfRangeError("password length", len(password),
			MinPasswordLength, MaxPasswordLength))
	case password != confirmation:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("password confirmation",
			errors.New("passwords do not match")))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.passwordHash = hash
	return u, nil
}

func RestoreUser(id kernel.UUID, name, email, phone string, passwordHash []byte, createdAt time.Time) (*User, error) {
	u := &User{createdAt: createdAt, isConstructed: true}
	if err := u.setIdentity(id, name, email, phone); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = append([]byte(nil), passwordHash...)
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Phone() string { return u.phone }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) PasswordHash() []byte {
	return append([]byte(nil), u.passwordHash...)
}

// Authenticate compares password against the stored hash.
func (u *User) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NormalizeLogin lowercases emails so lookups are case-insensitive; phone
// numbers are only trimmed.
func NormalizeLogin(login string) string {
	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		return strings.ToLower(login)
	}
	return login
}

func (u *User) setIdentity(id kernel.UUID, name, email, phone string) error {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}

	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case email == "":
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	case !strings.Contains(email, "@"):
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email)))
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}
	u.id, u.name, u.email, u.phone = id, name, email, phone
	return nil
}
