package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/api/metrics"
	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// OfferHandler handles offer creation and partial update.
type OfferHandler struct {
	service ports.OfferService
}

func NewOfferHandler(service ports.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// Create handles POST /create-offer/. Requires authentication.
func (h *OfferHandler) Create(c echo.Context) error {
	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offer, err := h.service.Create(c.Request().Context(), ports.CreateOfferInput{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		CompanyID:   req.Company,
		Skills:      req.Skills,
	})
	if err != nil {
		return err
	}

	metrics.OffersTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, offer)
}

// Update handles PATCH /update-offer/:id/. Partial semantics: fields absent
// from the body keep their stored values.
func (h *OfferHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	offer, err := h.service.Update(c.Request().Context(), ports.UpdateOfferInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		CompanyID:   req.Company,
		Skills:      req.Skills,
	})
	if err != nil {
		return err
	}

	metrics.OffersTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, offer)
}

// pathID parses the :id path parameter. A non-numeric id behaves like a
// missing row.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return uint(id), nil
}
