package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/api/metrics"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// CompanyHandler handles company creation.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create handles POST /create-company/. Requires authentication.
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company, err := h.service.Create(c.Request().Context(), ports.CreateCompanyInput{
		Name: req.Name,
		NIT:  req.NIT,
	})
	if err != nil {
		return err
	}

	metrics.CompaniesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, company)
}
