package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/empleos/employment-portal/internal/core/domain"
	"github.com/empleos/employment-portal/internal/core/ports"
)

type stubPostulationService struct {
	createFn func(ctx context.Context, input ports.CreatePostulationInput) (*domain.Postulation, error)
}

func (s *stubPostulationService) Create(ctx context.Context, input ports.CreatePostulationInput) (*domain.Postulation, error) {
	return s.createFn(ctx, input)
}

func TestPostulationHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostulationService{
		createFn: func(_ context.Context, input ports.CreatePostulationInput) (*domain.Postulation, error) {
			if input.UserID != 7 || input.OfferID != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.IdempotencyKey != "retry-abc" {
				t.Fatalf("idempotency key not forwarded: %q", input.IdempotencyKey)
			}
			return &domain.Postulation{ID: 1, UserID: input.UserID, OfferID: input.OfferID}, nil
		},
	}
	handler := NewPostulationHandler(stub)

	body := strings.NewReader(`{"user":7,"offer":5}`)
	req := httptest.NewRequest(http.MethodPost, "/create-postulation/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Idempotency-Key", "retry-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user"] != float64(7) || resp["offer"] != float64(5) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostulationHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostulationService{
		createFn: func(_ context.Context, _ ports.CreatePostulationInput) (*domain.Postulation, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostulationHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/create-postulation/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"user", "offer"} {
		if msgs := fieldErrs[field]; len(msgs) != 1 || msgs[0] != domain.MsgFieldRequired {
			t.Fatalf("missing required error for %s: %v", field, fieldErrs)
		}
	}
}

func TestPostulationHandler_Create_UnknownOffer(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostulationService{
		createFn: func(_ context.Context, input ports.CreatePostulationInput) (*domain.Postulation, error) {
			fieldErrs := domain.FieldErrors{}
			fieldErrs.Add("offer", domain.MsgInvalidPK(input.OfferID))
			return nil, fieldErrs
		},
	}
	handler := NewPostulationHandler(stub)

	body := strings.NewReader(`{"user":7,"offer":99999}`)
	req := httptest.NewRequest(http.MethodPost, "/create-postulation/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if msgs := fieldErrs["offer"]; len(msgs) != 1 || msgs[0] != `Invalid pk "99999" - object does not exist.` {
		t.Fatalf("unexpected offer errors: %v", fieldErrs)
	}
}
