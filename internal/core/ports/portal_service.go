package ports

import (
	"context"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// CreateCompanyInput carries the company creation form.
type CreateCompanyInput struct {
	Name string
	NIT  string
}

// CompanyService defines use-case operations for companies.
type CompanyService interface {
	Create(ctx context.Context, input CreateCompanyInput) (*domain.Company, error)
}

// CreateOfferInput carries the offer creation form. Salary is the raw
// decimal string as submitted.
type CreateOfferInput struct {
	Title       string
	Description string
	Salary      string
	CompanyID   uint
	Skills      string
}

// UpdateOfferInput carries a partial offer update; nil fields keep their
// prior values.
type UpdateOfferInput struct {
	ID          uint
	Title       *string
	Description *string
	Salary      *string
	CompanyID   *uint
	Skills      *string
}

// OfferService defines use-case operations for offers.
type OfferService interface {
	Create(ctx context.Context, input CreateOfferInput) (*domain.Offer, error)
	Update(ctx context.Context, input UpdateOfferInput) (*domain.Offer, error)
}

// CreatePostulationInput carries the postulation form. IdempotencyKey is
// optional; a replayed key returns the originally created row.
type CreatePostulationInput struct {
	UserID         uint
	OfferID        uint
	IdempotencyKey string
}

// PostulationService defines use-case operations for postulations.
type PostulationService interface {
	Create(ctx context.Context, input CreatePostulationInput) (*domain.Postulation, error)
}

// UpdateApplicantInput carries a partial applicant update; nil fields keep
// their prior values. Passwords are not updatable through this surface.
type UpdateApplicantInput struct {
	ID                   uint
	Username             *string
	IdentificationNumber *string
	Email                *string
	FirstName            *string
	LastName             *string
	ProfileDescription   *string
	PhoneNumber          *string
}

// ApplicantService defines the admin-facing applicant collection.
type ApplicantService interface {
	List(ctx context.Context) ([]*domain.Applicant, error)
	Get(ctx context.Context, id uint) (*domain.Applicant, error)
	Update(ctx context.Context, input UpdateApplicantInput) (*domain.Applicant, error)
	Delete(ctx context.Context, id uint) error
}

// IdempotencyStore remembers which idempotency keys have been used and the
// row they produced.
type IdempotencyStore interface {
	// Lookup returns the row id recorded for key, or ok=false when unseen.
	Lookup(ctx context.Context, key string) (id uint, ok bool, err error)
	Record(ctx context.Context, key string, id uint) error
}
