package services

import (
	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/core/domain/model/servicetype"
)

// prioritySurchargeCents maps each priority to the amount added to the service cost.
func prioritySurchargeCents() map[serviceorder.Priority]int64 {
	return map[serviceorder.Priority]int64{
		serviceorder.Low:      -500,
		serviceorder.Standard: 0,
		serviceorder.Express:  1000,
	}
}

// PriceCalculator quotes the total price for a service type and priority.
//
// Business rules:
//   - The base is the catalog cost of the service type
//   - Low priority is 5.00 cheaper, express is 10.00 more expensive
//   - The total never drops below zero
//
// Example usage:
//
//	calc := services.NewPriceCalculator()
//	total, err := calc.Quote(serviceType, serviceorder.Express)
//	if err != nil {
//	    // Handle invalid service type or priority
//	}
//	fmt.Println(total) // 84.95 for Rennski-Service
type PriceCalculator struct{}

func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Quote returns cost(serviceType) adjusted by the priority surcharge.
//
// Returns:
//   - kernel.Money: The total in CHF
//   - error: validation errors of the service type or priority
func (PriceCalculator) Quote(serviceType *servicetype.ServiceType, priority serviceorder.Priority) (kernel.Money, error) {
	if err := serviceType.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := priority.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return serviceType.Cost().Adjust(prioritySurchargeCents()[priority]), nil
}
