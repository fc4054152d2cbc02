package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// TokenAuthenticator resolves a bearer token key to its owner.
// Satisfied by the auth service.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, key string) (*domain.Applicant, error)
}

// TokenAuth validates the "Authorization: Token <key>" header against the
// token store and injects the authenticated applicant into the context.
// A key whose owner has been deleted no longer resolves: the token row is
// removed by FK cascade.
func TokenAuth(auth TokenAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
			}

			scheme, key, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "token") || strings.ContainsRune(key, ' ') {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token header.")
			}

			applicant, err := auth.Authenticate(c.Request().Context(), key)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token.")
			}

			c.Set("user", applicant)
			c.Set("user_id", applicant.ID)

			return next(c)
		}
	}
}
