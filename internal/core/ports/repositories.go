package ports

import (
	"context"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// ApplicantRepository defines persistence operations for applicants.
type ApplicantRepository interface {
	Create(ctx context.Context, a *domain.Applicant) error
	FindByID(ctx context.Context, id uint) (*domain.Applicant, error)
	FindByUsername(ctx context.Context, username string) (*domain.Applicant, error)
	// List returns all applicants ordered by date_joined, newest first.
	List(ctx context.Context) ([]*domain.Applicant, error)
	Update(ctx context.Context, a *domain.Applicant) error
	Delete(ctx context.Context, id uint) error
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
	ExistsByIdentificationNumber(ctx context.Context, idNumber string, excludeID uint) (bool, error)
}

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) error
	FindByID(ctx context.Context, id uint) (*domain.Company, error)
	ExistsByNIT(ctx context.Context, nit string) (bool, error)
}

// OfferRepository defines persistence operations for offers.
type OfferRepository interface {
	Create(ctx context.Context, o *domain.Offer) error
	FindByID(ctx context.Context, id uint) (*domain.Offer, error)
	// Update persists all fields of o and refreshes its UpdatedAt.
	Update(ctx context.Context, o *domain.Offer) error
}

// PostulationRepository defines persistence operations for postulations.
type PostulationRepository interface {
	Create(ctx context.Context, p *domain.Postulation) error
	FindByID(ctx context.Context, id uint) (*domain.Postulation, error)
}

// TokenRepository defines persistence operations for auth tokens.
type TokenRepository interface {
	Create(ctx context.Context, t *domain.Token) error
	FindByKey(ctx context.Context, key string) (*domain.Token, error)
	FindByUserID(ctx context.Context, userID uint) (*domain.Token, error)
}
