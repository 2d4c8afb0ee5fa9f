package http

import (
	"net/http"

	"skiservice/internal/core/application/usecases/queries"
	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetServiceTypes handles GET /api/servicetypes.
func (s *Server) GetServiceTypes(ctx echo.Context) error {
	types, err := s.handlers.GetServiceTypes.Handle(ctx.Request().Context(), queries.NewGetServiceTypesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.ServiceType, len(types))
	for i, t := range types {
		cost, costErr := kernel.NewMoney(t.CostCents)
		if costErr != nil {
			return s.respondError(ctx, costErr)
		}

		response[i] = servers.ServiceType{
			Id:        t.ID,
			Name:      t.Name,
			Cost:      cost.String(),
			CostCents: t.CostCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetServiceTypeQuote handles GET /api/servicetypes/{id}/quote.
func (s *Server) GetServiceTypeQuote(ctx echo.Context, id int64, params servers.GetServiceTypeQuoteParams) error {
	query, err := queries.NewGetServiceTypeQuoteQuery(id, params.Priority)
	if err != nil {
		return s.respondError(ctx, err)
	}

	quote, err := s.handlers.GetServiceTypeQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PriceQuote{
		ServiceTypeId: quote.ServiceTypeID,
		ServiceName:   quote.ServiceName,
		Priority:      quote.Priority,
		Total:         quote.Total,
		TotalCents:    quote.TotalCents,
	})
}
