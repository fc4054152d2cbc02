package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

// AuthService implements registration, login and token resolution.
type AuthService struct {
	applicants ports.ApplicantRepository
	tokens     ports.TokenRepository
	notifier   ports.WelcomeNotifier
	fromEmail  string
	log        zerolog.Logger
}

func NewAuthService(
	applicants ports.ApplicantRepository,
	tokens ports.TokenRepository,
	notifier ports.WelcomeNotifier,
	fromEmail string,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		applicants: applicants,
		tokens:     tokens,
		notifier:   notifier,
		fromEmail:  fromEmail,
		log:        log,
	}
}

// Register creates a new applicant and builds the welcome notification.
// Uniqueness violations come back as field-level validation errors, never as
// storage faults.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	fieldErrs := domain.FieldErrors{}

	if taken, err := s.applicants.ExistsByUsername(ctx, input.Username, 0); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	} else if taken {
		fieldErrs.Add("username", domain.MsgUsernameTaken)
	}
	if taken, err := s.applicants.ExistsByIdentificationNumber(ctx, input.IdentificationNumber, 0); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	} else if taken {
		fieldErrs.Add("identification_number", domain.MsgIdentificationUsed)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	applicant := &domain.Applicant{
		Username:             input.Username,
		PasswordHash:         string(hash),
		IdentificationNumber: input.IdentificationNumber,
		Email:                input.Email,
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		ProfileDescription:   input.ProfileDescription,
		PhoneNumber:          input.PhoneNumber,
		DateJoined:           time.Now().UTC(),
	}

	if err := s.applicants.Create(ctx, applicant); err != nil {
		// Lost a race with a concurrent registration: report it the same way
		// the pre-checks would have.
		if errors.Is(err, domain.ErrDuplicateRow) {
			return nil, domain.FieldErrors{"username": {domain.MsgUsernameTaken}}
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	welcome := domain.NewWelcomeEmail(applicant.Username, applicant.Email, s.fromEmail)
	if s.notifier != nil && applicant.Email != "" {
		s.notifier.Notify(welcome)
	}

	s.log.Info().Uint("user_id", applicant.ID).Str("username", applicant.Username).Msg("applicant registered")

	return &ports.RegisterResult{Applicant: applicant, Email: welcome}, nil
}

// Login checks credentials and returns the applicant's token, issuing one on
// first login and reusing it afterwards.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	badLogin := domain.FieldErrors{domain.NonFieldErrors: {domain.MsgBadLogin}}

	applicant, err := s.applicants.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrApplicantNotFound) {
			return nil, badLogin
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(applicant.PasswordHash), []byte(password)) != nil {
		return nil, badLogin
	}

	token, err := s.tokens.FindByUserID(ctx, applicant.ID)
	if errors.Is(err, domain.ErrTokenNotFound) {
		token = &domain.Token{Key: generateTokenKey(), UserID: applicant.ID, CreatedAt: time.Now().UTC()}
		err = s.tokens.Create(ctx, token)
		// Lost a race with a concurrent first login: the other request's
		// token is the one bound to the user now, so hand that one out.
		if errors.Is(err, domain.ErrDuplicateRow) {
			token, err = s.tokens.FindByUserID(ctx, applicant.ID)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Uint("user_id", applicant.ID).Msg("login succeeded")

	return &ports.LoginResult{Token: token.Key, UserID: applicant.ID}, nil
}

// Authenticate resolves a presented token key to its owner.
func (s *AuthService) Authenticate(ctx context.Context, key string) (*domain.Applicant, error) {
	token, err := s.tokens.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.applicants.FindByID(ctx, token.UserID)
}

// generateTokenKey returns a 40-hex-char opaque key.
func generateTokenKey() string {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock
		return fmt.Sprintf("%040x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
