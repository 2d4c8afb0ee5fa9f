package http

import (
	"context"
	"log/slog"
	"net/http"

	"skiservice/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the echo instance: request logging, bearer auth driven by the
// OpenAPI contract, the generated routes, /health and the Swagger UI.
func NewRouter(server *Server, verifier TokenVerifier, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	requestValidator, err := NewRequestValidator()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = requestValidator
	e.HTTPErrorHandler = NewHTTPErrorHandler()

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(NewBearerAuthMiddleware(swagger, verifier))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlers(e, server)

	if err = registerSwagger(e, swagger); err != nil {
		return nil, err
	}

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(context.Background(), slog.LevelError, "request", attrs...)
				return nil
			}
			logger.LogAttrs(context.Background(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}

type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

// registerSwagger serves the embedded contract through echo-swagger at /swagger/*.
func registerSwagger(e *echo.Echo, swagger *openapi3.T) error {
	if swag.GetSwagger(swag.Name) == nil {
		doc, err := swagger.MarshalJSON()
		if err != nil {
			return err
		}
		swag.Register(swag.Name, openAPIDoc{doc: string(doc)})
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
