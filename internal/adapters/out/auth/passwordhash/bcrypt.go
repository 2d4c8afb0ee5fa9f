// Package passwordhash hashes employee passwords with bcrypt.
package passwordhash

import (
	"errors"

	"skiservice/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// New returns a hasher with the given cost; values outside bcrypt's range
// fall back to bcrypt.DefaultCost.
func New(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return string(b), err
}

func (h BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
