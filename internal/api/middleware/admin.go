package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// AdminOnly rejects authenticated requests whose applicant lacks the admin
// flag. Must run after TokenAuth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			applicant, ok := c.Get("user").(*domain.Applicant)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
			}
			if !applicant.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action.")
			}
			return next(c)
		}
	}
}
