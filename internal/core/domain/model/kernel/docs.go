// Package kernel provides the value objects shared by the ski-service aggregates.
//
// The package includes:
//   - Email: a validated customer e-mail address
//   - Phone: a validated customer phone number
//   - Money: a non-negative CHF amount with two-decimal precision
//
// All values are immutable and must be built through their constructors; the zero
// value of each type fails Validate.
package kernel
