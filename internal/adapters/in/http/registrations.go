package http

import (
	"net/http"

	"skiservice/internal/core/application/usecases/commands"
	"skiservice/internal/core/application/usecases/queries"
	"skiservice/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRegistration handles POST /api/registrations. Creation and pickup dates are
// assigned by the server.
func (s *Server) CreateRegistration(ctx echo.Context) error {
	var body servers.NewRegistration
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateServiceOrderCommand(
		body.Name,
		string(body.Email),
		body.Phone,
		body.Priority,
		body.ServiceTypeId,
		valueOrEmpty(body.Comments),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.handlers.CreateServiceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RegistrationCreated{
		Id:           created.ID,
		CreationDate: created.CreatedAt,
		PickupDate:   created.PickupAt,
	})
}

// ListRegistrations handles GET /api/registrations. Filters combine with AND.
func (s *Server) ListRegistrations(ctx echo.Context, params servers.ListRegistrationsParams) error {
	query, err := queries.NewListServiceOrdersQuery(
		valueOrEmpty(params.Name),
		valueOrEmpty(params.Priority),
		valueOrEmpty(params.Status),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.handlers.ListServiceOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Registration, len(orders))
	for i, o := range orders {
		response[i] = servers.Registration{
			Id:              o.ID,
			Name:            o.CustomerName,
			Email:           o.Email,
			Phone:           o.Phone,
			Priority:        o.Priority,
			ServiceTypeId:   o.ServiceTypeID,
			ServiceTypeName: o.ServiceTypeName,
			CreationDate:    o.CreatedAt,
			PickupDate:      o.PickupAt,
			Comments:        o.Comments,
			Status:          o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateRegistrationComment handles PATCH /api/registrations/{id}.
func (s *Server) UpdateRegistrationComment(ctx echo.Context, id servers.RegistrationId) error {
	var body servers.CommentUpdate
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommentCommand(id, body.Comments)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrderComment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateRegistrationStatus handles PUT /api/registrations/{id}/status.
func (s *Server) UpdateRegistrationStatus(ctx echo.Context, id servers.RegistrationId) error {
	var body servers.StatusUpdate
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRegistration handles DELETE /api/registrations/{id}.
func (s *Server) DeleteRegistration(ctx echo.Context, id servers.RegistrationId) error {
	cmd, err := commands.NewDeleteServiceOrderCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteServiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAllRegistrations handles DELETE /api/registrations?confirm=true.
func (s *Server) DeleteAllRegistrations(ctx echo.Context, params servers.DeleteAllRegistrationsParams) error {
	confirmed := params.Confirm != nil && *params.Confirm

	cmd, err := commands.NewDeleteAllServiceOrdersCommand(confirmed)
	if err != nil {
		return s.respondError(ctx, err)
	}

	deleted, err := s.handlers.DeleteAllServiceOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeleteAllResponse{Deleted: deleted})
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
