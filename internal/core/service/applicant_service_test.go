package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

func strptr(s string) *string { return &s }

func seedApplicants(t *testing.T, repo *stubApplicantRepo) (older, newer *domain.Applicant) {
	t.Helper()
	ctx := context.Background()
	older = &domain.Applicant{
		Username:             "first",
		IdentificationNumber: "1111111111",
		DateJoined:           time.Now().Add(-time.Hour),
	}
	newer = &domain.Applicant{
		Username:             "second",
		IdentificationNumber: "2222222222",
		DateJoined:           time.Now(),
	}
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("seed older: %v", err)
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("seed newer: %v", err)
	}
	return older, newer
}

func TestApplicantService_List_NewestFirst(t *testing.T) {
	repo := newStubApplicantRepo()
	older, newer := seedApplicants(t, repo)
	svc := NewApplicantService(repo, zerolog.Nop())

	applicants, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(applicants) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(applicants))
	}
	if applicants[0].ID != newer.ID || applicants[1].ID != older.ID {
		t.Fatalf("expected newest first, got [%d %d]", applicants[0].ID, applicants[1].ID)
	}
}

func TestApplicantService_Get_NotFound(t *testing.T) {
	svc := NewApplicantService(newStubApplicantRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("expected ErrApplicantNotFound, got %v", err)
	}
}

func TestApplicantService_Update_Partial(t *testing.T) {
	repo := newStubApplicantRepo()
	older, _ := seedApplicants(t, repo)
	svc := NewApplicantService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), ports.UpdateApplicantInput{
		ID:          older.ID,
		FirstName:   strptr("Ana"),
		PhoneNumber: strptr("3001234567"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Ana" || updated.PhoneNumber != "3001234567" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.Username != "first" || updated.IdentificationNumber != "1111111111" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestApplicantService_Update_UsernameTaken(t *testing.T) {
	repo := newStubApplicantRepo()
	older, newer := seedApplicants(t, repo)
	svc := NewApplicantService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), ports.UpdateApplicantInput{
		ID:       older.ID,
		Username: strptr(newer.Username),
	})
	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if msgs := fieldErrs["username"]; len(msgs) != 1 || msgs[0] != domain.MsgUsernameTaken {
		t.Fatalf("unexpected username errors: %v", fieldErrs)
	}
}

func TestApplicantService_Update_OwnUsernameAllowed(t *testing.T) {
	repo := newStubApplicantRepo()
	older, _ := seedApplicants(t, repo)
	svc := NewApplicantService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), ports.UpdateApplicantInput{
		ID:       older.ID,
		Username: strptr(older.Username),
		Email:    strptr("first@example.com"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != "first@example.com" {
		t.Fatalf("email not applied: %+v", updated)
	}
}

func TestApplicantService_Delete(t *testing.T) {
	repo := newStubApplicantRepo()
	older, _ := seedApplicants(t, repo)
	svc := NewApplicantService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), older.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), older.ID); !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("expected row gone, got %v", err)
	}

	if err := svc.Delete(context.Background(), older.ID); !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("expected ErrApplicantNotFound on second delete, got %v", err)
	}
}
