package ports

import (
	"context"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// RegisterInput carries the registration form. Username, Password and
// IdentificationNumber are required; the rest is optional.
type RegisterInput struct {
	Username             string
	Password             string
	IdentificationNumber string
	Email                string
	FirstName            string
	LastName             string
	ProfileDescription   string
	PhoneNumber          string
}

// RegisterResult is returned after a successful registration.
type RegisterResult struct {
	Applicant *domain.Applicant
	// Email is the welcome payload, built whether or not it was dispatched.
	Email domain.WelcomeEmail
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token  string
	UserID uint
}

// AuthService covers registration, credential checks and token resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Authenticate resolves a bearer token key to its owning applicant.
	Authenticate(ctx context.Context, key string) (*domain.Applicant, error)
}

// WelcomeNotifier dispatches (or drops) registration notifications.
// Implementations must not block the request path.
type WelcomeNotifier interface {
	Notify(msg domain.WelcomeEmail)
}
