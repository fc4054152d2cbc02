package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// ApplicantService implements the admin-only applicant collection.
type ApplicantService struct {
	applicants ports.ApplicantRepository
	log        zerolog.Logger
}

func NewApplicantService(applicants ports.ApplicantRepository, log zerolog.Logger) *ApplicantService {
	return &ApplicantService{applicants: applicants, log: log}
}

func (s *ApplicantService) List(ctx context.Context) ([]*domain.Applicant, error) {
	return s.applicants.List(ctx)
}

func (s *ApplicantService) Get(ctx context.Context, id uint) (*domain.Applicant, error) {
	return s.applicants.FindByID(ctx, id)
}

// Update applies a partial update with the same per-field uniqueness rules
// as registration.
func (s *ApplicantService) Update(ctx context.Context, input ports.UpdateApplicantInput) (*domain.Applicant, error) {
	applicant, err := s.applicants.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	fieldErrs := domain.FieldErrors{}

	if input.Username != nil && *input.Username != applicant.Username {
		taken, err := s.applicants.ExistsByUsername(ctx, *input.Username, applicant.ID)
		if err != nil {
			return nil, fmt.Errorf("update applicant: %w", err)
		}
		if taken {
			fieldErrs.Add("username", domain.MsgUsernameTaken)
		} else {
			applicant.Username = *input.Username
		}
	}
	if input.IdentificationNumber != nil && *input.IdentificationNumber != applicant.IdentificationNumber {
		taken, err := s.applicants.ExistsByIdentificationNumber(ctx, *input.IdentificationNumber, applicant.ID)
		if err != nil {
			return nil, fmt.Errorf("update applicant: %w", err)
		}
		if taken {
			fieldErrs.Add("identification_number", domain.MsgIdentificationUsed)
		} else {
			applicant.IdentificationNumber = *input.IdentificationNumber
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if input.Email != nil {
		applicant.Email = *input.Email
	}
	if input.FirstName != nil {
		applicant.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		applicant.LastName = *input.LastName
	}
	if input.ProfileDescription != nil {
		applicant.ProfileDescription = *input.ProfileDescription
	}
	if input.PhoneNumber != nil {
		applicant.PhoneNumber = *input.PhoneNumber
	}

	if err := s.applicants.Update(ctx, applicant); err != nil {
		return nil, fmt.Errorf("update applicant: %w", err)
	}

	s.log.Info().Uint("user_id", applicant.ID).Msg("applicant updated")

	return applicant, nil
}

// Delete removes the applicant; postulations and the auth token go with it
// via FK cascade.
func (s *ApplicantService) Delete(ctx context.Context, id uint) error {
	if err := s.applicants.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("user_id", id).Msg("applicant deleted")
	return nil
}
