package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/core/ports"
)

// ApplicantHandler exposes the admin-only applicant collection at /users/.
type ApplicantHandler struct {
	service ports.ApplicantService
}

func NewApplicantHandler(service ports.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{service: service}
}

// List handles GET /users/. Applicants come back newest-joined first.
func (h *ApplicantHandler) List(c echo.Context) error {
	applicants, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantList(applicants))
}

// Get handles GET /users/:id/.
func (h *ApplicantHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	applicant, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantResponse(applicant))
}

// Update handles PATCH /users/:id/ with partial semantics.
func (h *ApplicantHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateApplicantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	applicant, err := h.service.Update(c.Request().Context(), ports.UpdateApplicantInput{
		ID:                   id,
		Username:             req.Username,
		IdentificationNumber: req.IdentificationNumber,
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		ProfileDescription:   req.ProfileDescription,
		PhoneNumber:          req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicantResponse(applicant))
}

// Delete handles DELETE /users/:id/. Postulations and the auth token are
// removed by FK cascade.
func (h *ApplicantHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
