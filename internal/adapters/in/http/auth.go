package http

import (
	"net/http"
	"strings"

	"skiservice/internal/generated/servers"
	"skiservice/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

const sessionUsernameKey = "session.username"

// TokenVerifier returns the username a session token was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// NewBearerAuthMiddleware protects every operation that declares a security
// requirement in the OpenAPI contract. Other routes pass through untouched.
func NewBearerAuthMiddleware(swagger *openapi3.T, verifier TokenVerifier) echo.MiddlewareFunc {
	protected := securedOperations(swagger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !protected[operationKey(ctx.Request().Method, openAPIPath(ctx.Path()))] {
				return next(ctx)
			}

			token, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized(ctx, "missing bearer token")
			}

			username, err := verifier.Verify(token)
			if err != nil {
				return unauthorized(ctx, "invalid token")
			}

			ctx.Set(sessionUsernameKey, username)
			return next(ctx)
		}
	}
}

// SessionUsername is the authenticated username, empty on public routes.
func SessionUsername(ctx echo.Context) string {
	username, _ := ctx.Get(sessionUsernameKey).(string)
	return username
}

func securedOperations(swagger *openapi3.T) map[string]bool {
	protected := make(map[string]bool)
	if swagger == nil || swagger.Paths == nil {
		return protected
	}

	for path, item := range swagger.Paths.Map() {
		for method, op := range item.Operations() {
			security := op.Security
			if security == nil {
				security = &swagger.Security
			}
			if len(*security) > 0 {
				protected[operationKey(method, path)] = true
			}
		}
	}
	return protected
}

func operationKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// openAPIPath turns an echo route such as /api/registrations/:id into /api/registrations/{id}.
func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(ctx echo.Context, reason string) error {
	err := errs.NewUnauthorizedError(reason)
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: err.Reason,
	})
}
