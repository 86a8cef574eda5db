package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/merqado/commerce-api/internal/api/middleware"
	"github.com/merqado/commerce-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Authenticate middleware
// and fast-fails before any service call: presence proves the middleware ran
// on this route.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	principal, ok := middleware.Principal(c)
	if !ok || principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
