package kernel

import (
	"fmt"

	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

// Currency of every amount handled by the shop.
const Currency = "CHF"

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is a non-negative amount with two-decimal precision, kept in cents to
// avoid floating point rounding.
//
// Example:
//
//	cost, _ := kernel.NewMoney(3495)
//	fmt.Println(cost) // 34.95
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", cents, 0, "unbounded")
	}
	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// Adjust adds delta cents; the result is clamped at zero.
func (m Money) Adjust(delta int64) Money {
	cents := m.cents + delta
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents, guard: guard.NewConstructorGuard()}
}

// String formats the amount as "34.95".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
