package ports

import "time"

// AuthSessionIssuer creates and checks session tokens for authenticated employees.
type AuthSessionIssuer interface {
	// Issue returns a signed token whose subject is the username.
	Issue(subject string) (string, error)

	// Verify checks signature and expiry and returns the subject.
	// Returns errs.ErrUnauthorized for any invalid token.
	Verify(token string) (string, error)
}

// PasswordHasher hashes and checks employee passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type Clock interface {
	Now() time.Time
}
