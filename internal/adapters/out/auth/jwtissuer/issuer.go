// Package jwtissuer issues and verifies HS256 session tokens for employees.
package jwtissuer

import (
	"errors"
	"time"

	"skiservice/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuerName = "skiservice"

var ErrSecretIsTooShort = errors.New("jwt secret must be at least 32 bytes")

// Issuer implements ports.AuthSessionIssuer.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns an issuer signing with secret. Tokens expire after ttl.
func New(secret []byte, ttl time.Duration) (*Issuer, error) {
	if len(secret) < 32 {
		return nil, ErrSecretIsTooShort
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}
	return &Issuer{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token with subject, issued-at, expiry and a random id.
func (i *Issuer) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errs.NewValueIsRequiredError("subject")
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuerName,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		ID:        uuid.NewString(),
	})

	return token.SignedString(i.secret)
}

// Verify returns the subject of a valid token. Any parsing, signature or expiry
// failure is an errs.UnauthorizedError.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", errs.NewUnauthorizedError("invalid token")
	}

	return claims.Subject, nil
}
