package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/merqado/commerce-api/internal/api/metrics"
	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which the resolved user is stored.
const PrincipalKey = "principal"

// Authenticate verifies the bearer token and resolves its subject to a full
// user record, which becomes the request's principal. The request moves
// through header extraction, token verification, and subject resolution; any
// failed step short-circuits with 401 before the route handler runs.
func Authenticate(tokens ports.TokenIssuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credentials").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credentials").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("user_not_found").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				// Store failure, not an auth decision. Let the central handler map it.
				return err
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}

// Principal extracts the resolved user injected by Authenticate.
func Principal(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(PrincipalKey).(*domain.User)
	return user, ok
}
