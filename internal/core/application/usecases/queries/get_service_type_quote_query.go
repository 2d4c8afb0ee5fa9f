package queries

import (
	"context"
	"errors"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/core/domain/services"
	"skiservice/internal/core/ports"
	"skiservice/internal/pkg/errs"
	"skiservice/internal/pkg/guard"
)

var ErrGetServiceTypeQuoteQueryIsNotConstructed = errors.New(
	"GetServiceTypeQuoteQuery must be created via NewGetServiceTypeQuoteQuery constructor",
)

// GetServiceTypeQuoteQuery asks for the price of a service at a priority.
type GetServiceTypeQuoteQuery struct {
	serviceTypeID int64
	priority      serviceorder.Priority

	guard guard.ConstructorGuard
}

func NewGetServiceTypeQuoteQuery(serviceTypeID int64, priority string) (GetServiceTypeQuoteQuery, error) {
	var idErr error
	if serviceTypeID <= 0 {
		idErr = errs.NewValueIsOutOfRangeError("serviceTypeId", serviceTypeID, 1, "unbounded")
	}
	p, priorityErr := serviceorder.ParsePriority(priority)
	if err := errors.Join(idErr, priorityErr); err != nil {
		return GetServiceTypeQuoteQuery{}, err
	}

	return GetServiceTypeQuoteQuery{
		serviceTypeID: serviceTypeID,
		priority:      p,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetServiceTypeQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceTypeQuoteQueryIsNotConstructed)
}

func (q GetServiceTypeQuoteQuery) ServiceTypeID() int64 {
	return q.serviceTypeID
}

func (q GetServiceTypeQuoteQuery) Priority() serviceorder.Priority {
	return q.priority
}

type ServiceTypeQuote struct {
	ServiceTypeID int64
	ServiceName   string
	Priority      string
	Total         string
	TotalCents    int64
}

// GetServiceTypeQuoteQueryHandler prices a catalog entry with services.PriceCalculator.
type GetServiceTypeQuoteQueryHandler struct {
	serviceTypes ports.ServiceTypeRepository
	calculator   services.PriceCalculator
}

func NewGetServiceTypeQuoteQueryHandler(
	serviceTypes ports.ServiceTypeRepository,
	calculator services.PriceCalculator,
) GetServiceTypeQuoteQueryHandler {
	return GetServiceTypeQuoteQueryHandler{serviceTypes: serviceTypes, calculator: calculator}
}

func (h GetServiceTypeQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetServiceTypeQuoteQuery,
) (ServiceTypeQuote, error) {
	if err := query.Validate(); err != nil {
		return ServiceTypeQuote{}, err
	}

	st, err := h.serviceTypes.Get(ctx, query.ServiceTypeID())
	if err != nil {
		return ServiceTypeQuote{}, err
	}

	total, err := h.calculator.Quote(st, query.Priority())
	if err != nil {
		return ServiceTypeQuote{}, err
	}

	return ServiceTypeQuote{
		ServiceTypeID: st.ID(),
		ServiceName:   st.Name(),
		Priority:      query.Priority().String(),
		Total:         total.String(),
		TotalCents:    total.Cents(),
	}, nil
}
