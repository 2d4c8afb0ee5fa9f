package employee_test

import (
	"testing"

	"skiservice/internal/core/domain/model/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matches(ok bool) func() bool {
	return func() bool { return ok }
}

func active(t *testing.T, attempts int) employee.Employee {
	t.Helper()
	e, err := employee.RestoreEmployee(1, "Arda", testHash, false, attempts)
	require.NoError(t, err)
	return e
}

func locked(t *testing.T) employee.Employee {
	t.Helper()
	e, err := employee.RestoreEmployee(1, "Arda", testHash, true, employee.MaxFailedLoginAttempts)
	require.NoError(t, err)
	return e
}

func TestAttemptLogin_Success(t *testing.T) {
	for attempts := 0; attempts < employee.MaxFailedLoginAttempts; attempts++ {
		e := active(t, attempts)

		next, outcome := e.AttemptLogin(matches(true))

		assert.Equal(t, employee.LoginSucceeded, outcome)
		assert.Zero(t, next.FailedLoginAttempts(), "success resets the counter")
		assert.False(t, next.IsLocked())
		assert.Equal(t, attempts != 0, e.Changed(next))
	}
}

func TestAttemptLogin_Failure(t *testing.T) {
	testCases := []struct {
		attempts     int
		wantAttempts int
		wantLocked   bool
		wantOutcome  employee.LoginOutcome
	}{
		{0, 1, false, employee.LoginRejectedInvalidCredentials},
		{1, 2, false, employee.LoginRejectedInvalidCredentials},
		{2, 3, true, employee.LoginRejectedAndLocked},
	}

	for _, tc := range testCases {
		t.Run(tc.wantOutcome.String(), func(t *testing.T) {
			e := active(t, tc.attempts)

			next, outcome := e.AttemptLogin(matches(false))

			assert.Equal(t, tc.wantOutcome, outcome)
			assert.Equal(t, tc.wantAttempts, next.FailedLoginAttempts())
			assert.Equal(t, tc.wantLocked, next.IsLocked())
			assert.True(t, e.Changed(next))
			assert.Equal(t, tc.attempts, e.FailedLoginAttempts(), "receiver is not mutated")
		})
	}
}

func TestAttemptLogin_LockedAccountSkipsCredentialCheck(t *testing.T) {
	e := locked(t)
	called := false

	next, outcome := e.AttemptLogin(func() bool {
		called = true
		return true
	})

	assert.Equal(t, employee.LoginRejectedLocked, outcome)
	assert.False(t, called, "credentials must not be compared for a locked account")
	assert.False(t, e.Changed(next))
	assert.Equal(t, employee.MaxFailedLoginAttempts, next.FailedLoginAttempts())
}

func TestAttemptLogin_LocksAtExactlyThirdConsecutiveFailure(t *testing.T) {
	t.Run("from a fresh account", func(t *testing.T) {
		e := active(t, 0)
		var outcomes []employee.LoginOutcome

		for range 3 {
			var outcome employee.LoginOutcome
			e, outcome = e.AttemptLogin(matches(false))
			outcomes = append(outcomes, outcome)
		}

		assert.Equal(t, []employee.LoginOutcome{
			employee.LoginRejectedInvalidCredentials,
			employee.LoginRejectedInvalidCredentials,
			employee.LoginRejectedAndLocked,
		}, outcomes)

		_, outcome := e.AttemptLogin(matches(true))
		assert.Equal(t, employee.LoginRejectedLocked, outcome, "correct password after lock is still rejected")
	})

	t.Run("a success in between restarts the run", func(t *testing.T) {
		e := active(t, 0)
		sequence := []bool{false, false, true, false, false}

		for _, ok := range sequence {
			e, _ = e.AttemptLogin(matches(ok))
		}
		assert.False(t, e.IsLocked())
		assert.Equal(t, 2, e.FailedLoginAttempts())

		e, outcome := e.AttemptLogin(matches(false))
		assert.Equal(t, employee.LoginRejectedAndLocked, outcome)
		assert.True(t, e.IsLocked())
	})

	t.Run("further failures do not grow the counter once locked", func(t *testing.T) {
		e := locked(t)

		for range 5 {
			e, _ = e.AttemptLogin(matches(false))
		}

		assert.Equal(t, employee.MaxFailedLoginAttempts, e.FailedLoginAttempts())
	})
}

func TestUnlock(t *testing.T) {
	t.Run("locked account returns to Active(0)", func(t *testing.T) {
		e := locked(t)

		next, outcome := e.Unlock()

		assert.Equal(t, employee.Unlocked, outcome)
		assert.False(t, next.IsLocked())
		assert.Zero(t, next.FailedLoginAttempts())
		assert.True(t, e.Changed(next))
	})

	t.Run("unlocked account is reported as already unlocked", func(t *testing.T) {
		e := active(t, 1)

		next, outcome := e.Unlock()

		assert.Equal(t, employee.AlreadyUnlocked, outcome)
		assert.False(t, e.Changed(next))
	})
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "Unknown", employee.LoginOutcomeUnknown.String())
	assert.Equal(t, "Succeeded", employee.LoginSucceeded.String())
	assert.Equal(t, "AlreadyUnlocked", employee.AlreadyUnlocked.String())
	assert.Equal(t, "Unknown", employee.UnlockOutcome(42).String())
}
