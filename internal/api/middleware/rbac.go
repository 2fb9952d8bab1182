package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tattoostudio/studio-manager/internal/api/metrics"
	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

// RequireRole rejects requests whose identity role is below min.
// It must run after Auth.
func RequireRole(min domain.Role) echo.MiddlewareFunc {
	msg := string(min) + " access required"
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok || !identity.Role().Satisfies(min) {
				metrics.AccessDeniedTotal.WithLabelValues("insufficient_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, msg)
			}
			return next(c)
		}
	}
}

// Gate composes Auth and RequireRole into a single route middleware.
func Gate(verifier ports.TokenVerifier, min domain.Role) echo.MiddlewareFunc {
	auth := Auth(verifier)
	role := RequireRole(min)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(role(next))
	}
}

// DebugOnly hides a route unless the server runs in debug mode.
func DebugOnly(debug bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !debug {
				return c.String(http.StatusForbidden, "endpoint is only available in debug mode")
			}
			return next(c)
		}
	}
}
