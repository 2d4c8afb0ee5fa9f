package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// phonePattern accepts international and local notations such as
// "+41 79 123 45 67", "079/123.45.67" or "(044) 123-4567".
var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ()/.-]{5,18}[0-9]$`)

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Phone is a customer contact number.
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !IsValidPhone(s) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not a valid phone number", s))
	}
	return Phone{value: s, guard: guard.NewConstructorGuard()}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}
