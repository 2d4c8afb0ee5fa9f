// Package employee provides the Employee snapshot and the account lockout policy
// applied on every login attempt.
//
// The package includes:
//   - Employee: an immutable snapshot of one employee record (identity, password hash, lock state)
//   - LoginOutcome / UnlockOutcome: tags describing the result of a transition
//
// Lock state machine:
//
//	Active(0) ──fail──> Active(1) ──fail──> Active(2) ──fail──> Locked
//	    ^                   │                   │                  │
//	    └──────success──────┴───────────────────┘                  │
//	    └───────────────────────────unlock─────────────────────────┘
//
// Transitions never mutate the receiver: they return the next snapshot together with
// an outcome, and the caller persists the snapshot when Changed reports a difference.
package employee
