package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/api/metrics"
	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /register/. No authentication required.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:             req.Username,
		Password:             req.Password,
		IdentificationNumber: req.IdentificationNumber,
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		ProfileDescription:   req.ProfileDescription,
		PhoneNumber:          req.PhoneNumber,
	})
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User created successfully",
		Data:    toApplicantResponse(result.Applicant),
		Email:   result.Email,
	})
}

// Login handles POST /login/. On success the applicant's token is issued or
// reused; on failure the response is a 400 validation error with no token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{Token: result.Token, UserID: result.UserID})
}
