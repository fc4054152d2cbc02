package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// PostulationRepository persists postulations through gorm.
type PostulationRepository struct {
	db *gorm.DB
}

func NewPostulationRepository(db *gorm.DB) *PostulationRepository {
	return &PostulationRepository{db: db}
}

func (r *PostulationRepository) Create(ctx context.Context, p *domain.Postulation) error {
	result := r.db.WithContext(ctx).Create(p)
	if result.Error != nil {
		return fmt.Errorf("insert postulation: %w", result.Error)
	}
	return nil
}

func (r *PostulationRepository) FindByID(ctx context.Context, id uint) (*domain.Postulation, error) {
	var p domain.Postulation
	result := r.db.WithContext(ctx).First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find postulation: %w", result.Error)
	}
	return &p, nil
}
