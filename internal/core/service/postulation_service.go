package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// PostulationService implements postulation creation with optional
// idempotency-key replay.
type PostulationService struct {
	postulations ports.PostulationRepository
	applicants   ports.ApplicantRepository
	offers       ports.OfferRepository
	idempotency  ports.IdempotencyStore
	log          zerolog.Logger
}

// NewPostulationService builds a PostulationService. idempotency may be nil,
// in which case Idempotency-Key replay is disabled.
func NewPostulationService(
	postulations ports.PostulationRepository,
	applicants ports.ApplicantRepository,
	offers ports.OfferRepository,
	idempotency ports.IdempotencyStore,
	log zerolog.Logger,
) *PostulationService {
	return &PostulationService{
		postulations: postulations,
		applicants:   applicants,
		offers:       offers,
		idempotency:  idempotency,
		log:          log,
	}
}

func (s *PostulationService) Create(ctx context.Context, input ports.CreatePostulationInput) (*domain.Postulation, error) {
	if input.IdempotencyKey != "" && s.idempotency != nil {
		id, seen, err := s.idempotency.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("idempotency lookup failed, processing anyway")
		} else if seen {
			existing, err := s.postulations.FindByID(ctx, id)
			if err == nil {
				s.log.Info().Str("idempotency_key", input.IdempotencyKey).Uint("postulation_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	fieldErrs := domain.FieldErrors{}

	if _, err := s.applicants.FindByID(ctx, input.UserID); err != nil {
		if !errors.Is(err, domain.ErrApplicantNotFound) {
			return nil, fmt.Errorf("create postulation: %w", err)
		}
		fieldErrs.Add("user", domain.MsgInvalidPK(input.UserID))
	}
	if _, err := s.offers.FindByID(ctx, input.OfferID); err != nil {
		if !errors.Is(err, domain.ErrOfferNotFound) {
			return nil, fmt.Errorf("create postulation: %w", err)
		}
		fieldErrs.Add("offer", domain.MsgInvalidPK(input.OfferID))
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	postulation := &domain.Postulation{UserID: input.UserID, OfferID: input.OfferID}
	if err := s.postulations.Create(ctx, postulation); err != nil {
		return nil, fmt.Errorf("create postulation: %w", err)
	}

	if input.IdempotencyKey != "" && s.idempotency != nil {
		if err := s.idempotency.Record(ctx, input.IdempotencyKey, postulation.ID); err != nil {
			s.log.Warn().Err(err).Msg("failed to record idempotency key")
		}
	}

	s.log.Info().
		Uint("postulation_id", postulation.ID).
		Uint("user_id", postulation.UserID).
		Uint("offer_id", postulation.OfferID).
		Msg("postulation created")

	return postulation, nil
}
