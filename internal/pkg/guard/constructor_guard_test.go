package guard_test

import (
	"errors"
	"testing"

	"skiservice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errQuoteNotConstructed := errors.New("Quote must be created via newQuote")

	type quote struct {
		cents int64
		guard guard.ConstructorGuard
	}

	newQuote := func(cents int64) (quote, error) {
		if cents < 0 {
			return quote{}, errors.New("cents cannot be negative")
		}
		return quote{cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed value passes", func(t *testing.T) {
		q, err := newQuote(3495)

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQuoteNotConstructed))
		assert.Equal(t, int64(3495), q.cents)
	})

	t.Run("zero value fails", func(t *testing.T) {
		var q quote

		assert.Equal(t, errQuoteNotConstructed, q.guard.Validate(errQuoteNotConstructed))
	})
}
