package service

import (
	"context"
	"sync"
	"time"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubApplicantRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*domain.Applicant
}

func newStubApplicantRepo() *stubApplicantRepo {
	return &stubApplicantRepo{rows: make(map[uint]*domain.Applicant)}
}

func (r *stubApplicantRepo) Create(_ context.Context, a *domain.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Username == a.Username || row.IdentificationNumber == a.IdentificationNumber {
			return domain.ErrDuplicateRow
		}
	}
	r.nextID++
	a.ID = r.nextID
	clone := *a
	r.rows[a.ID] = &clone
	return nil
}

func (r *stubApplicantRepo) FindByID(_ context.Context, id uint) (*domain.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrApplicantNotFound
	}
	clone := *row
	return &clone, nil
}

func (r *stubApplicantRepo) FindByUsername(_ context.Context, username string) (*domain.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Username == username {
			clone := *row
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicantNotFound
}

func (r *stubApplicantRepo) List(_ context.Context) ([]*domain.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Applicant, 0, len(r.rows))
	for _, row := range r.rows {
		clone := *row
		out = append(out, &clone)
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].DateJoined.After(out[i].DateJoined) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *stubApplicantRepo) Update(_ context.Context, a *domain.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[a.ID]; !ok {
		return domain.ErrApplicantNotFound
	}
	clone := *a
	r.rows[a.ID] = &clone
	return nil
}

func (r *stubApplicantRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrApplicantNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *stubApplicantRepo) ExistsByUsername(_ context.Context, username string, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Username == username && row.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubApplicantRepo) ExistsByIdentificationNumber(_ context.Context, idNumber string, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.IdentificationNumber == idNumber && row.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type stubCompanyRepo struct {
	nextID uint
	rows   map[uint]*domain.Company
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{rows: make(map[uint]*domain.Company)}
}

func (r *stubCompanyRepo) Create(_ context.Context, c *domain.Company) error {
	for _, row := range r.rows {
		if row.NIT == c.NIT {
			return domain.ErrDuplicateRow
		}
	}
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id uint) (*domain.Company, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	clone := *row
	return &clone, nil
}

func (r *stubCompanyRepo) ExistsByNIT(_ context.Context, nit string) (bool, error) {
	for _, row := range r.rows {
		if row.NIT == nit {
			return true, nil
		}
	}
	return false, nil
}

type stubOfferRepo struct {
	nextID uint
	rows   map[uint]*domain.Offer
}

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{rows: make(map[uint]*domain.Offer)}
}

func (r *stubOfferRepo) Create(_ context.Context, o *domain.Offer) error {
	r.nextID++
	o.ID = r.nextID
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	clone := *o
	r.rows[o.ID] = &clone
	return nil
}

func (r *stubOfferRepo) FindByID(_ context.Context, id uint) (*domain.Offer, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrOfferNotFound
	}
	clone := *row
	return &clone, nil
}

func (r *stubOfferRepo) Update(_ context.Context, o *domain.Offer) error {
	if _, ok := r.rows[o.ID]; !ok {
		return domain.ErrOfferNotFound
	}
	clone := *o
	r.rows[o.ID] = &clone
	return nil
}

type stubPostulationRepo struct {
	nextID uint
	rows   map[uint]*domain.Postulation
}

func newStubPostulationRepo() *stubPostulationRepo {
	return &stubPostulationRepo{rows: make(map[uint]*domain.Postulation)}
}

func (r *stubPostulationRepo) Create(_ context.Context, p *domain.Postulation) error {
	r.nextID++
	p.ID = r.nextID
	clone := *p
	r.rows[p.ID] = &clone
	return nil
}

func (r *stubPostulationRepo) FindByID(_ context.Context, id uint) (*domain.Postulation, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *row
	return &clone, nil
}

type stubTokenRepo struct {
	rows map[string]*domain.Token
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{rows: make(map[string]*domain.Token)}
}

func (r *stubTokenRepo) Create(_ context.Context, t *domain.Token) error {
	clone := *t
	r.rows[t.Key] = &clone
	return nil
}

func (r *stubTokenRepo) FindByKey(_ context.Context, key string) (*domain.Token, error) {
	row, ok := r.rows[key]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	clone := *row
	return &clone, nil
}

func (r *stubTokenRepo) FindByUserID(_ context.Context, userID uint) (*domain.Token, error) {
	for _, row := range r.rows {
		if row.UserID == userID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, domain.ErrTokenNotFound
}

type stubIdempotencyStore struct {
	seen map[string]uint
}

func newStubIdempotencyStore() *stubIdempotencyStore {
	return &stubIdempotencyStore{seen: make(map[string]uint)}
}

func (s *stubIdempotencyStore) Lookup(_ context.Context, key string) (uint, bool, error) {
	id, ok := s.seen[key]
	return id, ok, nil
}

func (s *stubIdempotencyStore) Record(_ context.Context, key string, id uint) error {
	s.seen[key] = id
	return nil
}
