package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/api/metrics"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// PostulationHandler handles postulation creation.
type PostulationHandler struct {
	service ports.PostulationService
}

func NewPostulationHandler(service ports.PostulationService) *PostulationHandler {
	return &PostulationHandler{service: service}
}

// Create handles POST /create-postulation/. Requires authentication. An
// optional Idempotency-Key header makes retried submissions return the
// originally created row.
func (h *PostulationHandler) Create(c echo.Context) error {
	var req createPostulationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	postulation, err := h.service.Create(c.Request().Context(), ports.CreatePostulationInput{
		UserID:         req.User,
		OfferID:        req.Offer,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.PostulationsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, postulation)
}
