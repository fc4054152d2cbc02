package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// CompanyService implements company creation.
type CompanyService struct {
	companies ports.CompanyRepository
	log       zerolog.Logger
}

func NewCompanyService(companies ports.CompanyRepository, log zerolog.Logger) *CompanyService {
	return &CompanyService{companies: companies, log: log}
}

func (s *CompanyService) Create(ctx context.Context, input ports.CreateCompanyInput) (*domain.Company, error) {
	if taken, err := s.companies.ExistsByNIT(ctx, input.NIT); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	} else if taken {
		return nil, domain.FieldErrors{"nit": {domain.MsgNITTaken}}
	}

	company := &domain.Company{Name: input.Name, NIT: input.NIT}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicateRow) {
			return nil, domain.FieldErrors{"nit": {domain.MsgNITTaken}}
		}
		return nil, fmt.Errorf("create company: %w", err)
	}

	s.log.Info().Uint("company_id", company.ID).Str("nit", company.NIT).Msg("company created")

	return company, nil
}
