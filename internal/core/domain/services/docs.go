// Package services provides domain services that combine several domain entities of
// the ski-service shop into one business calculation.
//
// The package includes:
//   - PriceCalculator: quotes the price of a service type at a given priority
package services
