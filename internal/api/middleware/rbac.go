package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/merqado/commerce-api/internal/api/metrics"
	"github.com/merqado/commerce-api/internal/core/domain"
)

// RequireAnyRole enforces role-based access control: the principal must hold
// at least one of the allowed roles. Must be chained after Authenticate.
func RequireAnyRole(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := Principal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !principal.HasAnyRole(allowed...) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
