package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// OfferService implements offer creation and partial update.
type OfferService struct {
	offers    ports.OfferRepository
	companies ports.CompanyRepository
	log       zerolog.Logger
}

func NewOfferService(offers ports.OfferRepository, companies ports.CompanyRepository, log zerolog.Logger) *OfferService {
	return &OfferService{offers: offers, companies: companies, log: log}
}

func (s *OfferService) Create(ctx context.Context, input ports.CreateOfferInput) (*domain.Offer, error) {
	fieldErrs := domain.FieldErrors{}

	salary, err := domain.ParseSalary(input.Salary)
	if err != nil {
		fieldErrs.Add("salary", "A valid number is required.")
	}
	if err := s.checkCompany(ctx, input.CompanyID, fieldErrs); err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	offer := &domain.Offer{
		Title:       input.Title,
		Description: input.Description,
		Salary:      salary,
		CompanyID:   input.CompanyID,
		Skills:      input.Skills,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.log.Info().Uint("offer_id", offer.ID).Uint("company_id", offer.CompanyID).Msg("offer created")

	return offer, nil
}

// Update applies a partial update: nil input fields keep their stored values.
// The update timestamp is refreshed on every successful write.
func (s *OfferService) Update(ctx context.Context, input ports.UpdateOfferInput) (*domain.Offer, error) {
	offer, err := s.offers.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	fieldErrs := domain.FieldErrors{}

	if input.Title != nil {
		offer.Title = *input.Title
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}
	if input.Skills != nil {
		offer.Skills = *input.Skills
	}
	if input.Salary != nil {
		salary, err := domain.ParseSalary(*input.Salary)
		if err != nil {
			fieldErrs.Add("salary", "A valid number is required.")
		} else {
			offer.Salary = salary
		}
	}
	if input.CompanyID != nil {
		if err := s.checkCompany(ctx, *input.CompanyID, fieldErrs); err != nil {
			return nil, err
		}
		offer.CompanyID = *input.CompanyID
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	offer.UpdatedAt = time.Now().UTC()
	if err := s.offers.Update(ctx, offer); err != nil {
		return nil, fmt.Errorf("update offer: %w", err)
	}

	s.log.Info().Uint("offer_id", offer.ID).Msg("offer updated")

	return offer, nil
}

// checkCompany records a field error on "company" when the id does not
// reference an existing row. Storage faults are returned as-is.
func (s *OfferService) checkCompany(ctx context.Context, id uint, fieldErrs domain.FieldErrors) error {
	_, err := s.companies.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCompanyNotFound) {
		fieldErrs.Add("company", domain.MsgInvalidPK(id))
		return nil
	}
	if err != nil {
		return fmt.Errorf("check company: %w", err)
	}
	return nil
}
