// Package auth signs and verifies customer session tokens (HS256 JWT).
package auth

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const (
	Issuer     = "fooddelivery"
	DefaultTTL = 24 * time.Hour

	minSecretLength = 16
)

// SessionClaims is the session record handed to the customer after login.
// Subject holds the user id.
type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration, now func() time.Time) (*TokenIssuer, error) {
	if len(secret) < minSecretLength {
		return nil, errs.NewValueIsOutOfRangeError("jwt secret length", len(secret), minSecretLength, "unbounded")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: now}, nil
}

func (t *TokenIssuer) Issue(user *account.User) (string, error) {
	if user == nil {
		return "", errs.NewValueIsRequiredError("user")
	}

	issuedAt := t.now().UTC()
	claims := SessionClaims{
		Name:  user.Name(),
		Email: user.Email(),
		Phone: user.Phone(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   user.ID().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, issuer and expiry.
func (t *TokenIssuer) Parse(token string) (*SessionClaims, error) {
	claims := new(SessionClaims)
	_, err := jwt.ParseWithClaims(token, claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, errors.Join(account.ErrInvalidCredentials, err)
	}
	return claims, nil
}

// SigningKey is shared with the HTTP JWT middleware.
func (t *TokenIssuer) SigningKey() []byte {
	return t.secret
}

func (t *TokenIssuer) keyFunc(*jwt.Token) (any, error) {
	return t.secret, nil
}
