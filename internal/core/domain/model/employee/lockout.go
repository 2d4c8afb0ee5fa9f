package employee

// LoginOutcome tags the result of one login attempt.
type LoginOutcome int

const (
	LoginOutcomeUnknown LoginOutcome = iota

	// LoginSucceeded resets the account to Active(0).
	LoginSucceeded

	// LoginRejectedLocked means the account was already locked; credentials were not compared.
	LoginRejectedLocked

	// LoginRejectedInvalidCredentials counts a failure without locking.
	LoginRejectedInvalidCredentials

	// LoginRejectedAndLocked counts the failure that locked the account.
	LoginRejectedAndLocked
)

func (o LoginOutcome) String() string {
	switch o {
	case LoginSucceeded:
		return "Succeeded"
	case LoginRejectedLocked:
		return "RejectedLocked"
	case LoginRejectedInvalidCredentials:
		return "RejectedInvalidCredentials"
	case LoginRejectedAndLocked:
		return "RejectedAndLocked"
	default:
		return "Unknown"
	}
}

// UnlockOutcome tags the result of an administrative unlock.
type UnlockOutcome int

const (
	UnlockOutcomeUnknown UnlockOutcome = iota
	Unlocked
	AlreadyUnlocked
)

func (o UnlockOutcome) String() string {
	switch o {
	case Unlocked:
		return "Unlocked"
	case AlreadyUnlocked:
		return "AlreadyUnlocked"
	default:
		return "Unknown"
	}
}

// AttemptLogin evaluates one login attempt and returns the next snapshot.
//
// The lock check precedes the credential check: passwordMatches is only called
// when the account is not locked, and a locked account is returned unchanged.
//
// Example:
//
//	next, outcome := emp.AttemptLogin(func() bool {
//	    return hasher.Compare(emp.PasswordHash(), password)
//	})
//	if emp.Changed(next) {
//	    err = repo.Update(ctx, next)
//	}
func (e Employee) AttemptLogin(passwordMatches func() bool) (Employee, LoginOutcome) {
	if e.isLocked {
		return e, LoginRejectedLocked
	}

	if passwordMatches() {
		e.failedLoginAttempts = 0
		return e, LoginSucceeded
	}

	e.failedLoginAttempts++
	if e.failedLoginAttempts >= MaxFailedLoginAttempts {
		e.isLocked = true
		return e, LoginRejectedAndLocked
	}
	return e, LoginRejectedInvalidCredentials
}

// Unlock returns the account to Active(0). An account that is not locked is
// returned unchanged with AlreadyUnlocked so the caller can skip the write.
func (e Employee) Unlock() (Employee, UnlockOutcome) {
	if !e.isLocked {
		return e, AlreadyUnlocked
	}

	e.isLocked = false
	e.failedLoginAttempts = 0
	return e, Unlocked
}
