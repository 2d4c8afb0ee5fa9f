package kernel

import (
	"fmt"
	"strings"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

var addressValidator = validator.New()

// Email is a customer contact address. The value is trimmed and validated on
// construction; the zero value is invalid.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail validates s as an RFC 5322 address.
//
// Example:
//
//	email, err := kernel.NewEmail("lukas@example.ch")
//	if err != nil {
//	    return err // ValueIsRequiredError or ValueIsInvalidError
//	}
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if err := addressValidator.Var(s, "email"); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", s))
	}
	return Email{value: s, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
