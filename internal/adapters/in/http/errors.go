package http

import (
	"errors"
	"net/http"

	"skiservice/internal/generated/servers"
	"skiservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const messageInternalError = "internal server error"

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as servers.Error. Unauthorized responses carry only the
// rejection reason; internal faults are logged and answered with a generic message.
func (s *Server) respondError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	var unauthorized *errs.UnauthorizedError
	switch {
	case errors.As(err, &unauthorized):
		message = unauthorized.Reason
	case status == http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = messageInternalError
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status), //nolint:gosec // HTTP status codes fit in int32
		Message: message,
	})
}

// NewHTTPErrorHandler renders errors raised outside the handlers, such as parameter
// binding failures and unknown routes, in the same servers.Error shape.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := messageInternalError

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}

		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(status)
			return
		}
		_ = ctx.JSON(status, servers.Error{
			Code:    int32(status), //nolint:gosec // HTTP status codes fit in int32
			Message: message,
		})
	}
}
