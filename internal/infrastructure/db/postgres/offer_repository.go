package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// OfferRepository persists offers through gorm.
type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	result := r.db.WithContext(ctx).Create(o)
	if result.Error != nil {
		return fmt.Errorf("insert offer: %w", result.Error)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uint) (*domain.Offer, error) {
	var o domain.Offer
	result := r.db.WithContext(ctx).First(&o, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("find offer: %w", result.Error)
	}
	return &o, nil
}

func (r *OfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	result := r.db.WithContext(ctx).Save(o)
	if result.Error != nil {
		return fmt.Errorf("update offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}
