package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// detailResponse is the envelope for auth, permission and not-found errors.
// Validation errors use the bare field→messages map instead.
type detailResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders domain.FieldErrors as a 400 body mapping each field to its
//     list of messages.
//   - Maps missing-row sentinels to 404 {"detail": "Not found."}.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			_ = c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}

		// Echo's own errors (bind failures, 404 from router) and the auth
		// middleware's 401/403.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, detailResponse{Detail: fmt.Sprintf("%v", he.Message)})
			return
		}

		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrApplicantNotFound),
			errors.Is(err, domain.ErrCompanyNotFound),
			errors.Is(err, domain.ErrOfferNotFound):
			_ = c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, detailResponse{Detail: "A server error occurred."})
	}
}
