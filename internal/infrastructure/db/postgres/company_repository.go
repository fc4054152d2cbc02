package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// CompanyRepository persists companies through gorm.
type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	result := r.db.WithContext(ctx).Create(c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRow
		}
		return fmt.Errorf("insert company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*domain.Company, error) {
	var c domain.Company
	result := r.db.WithContext(ctx).First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", result.Error)
	}
	return &c, nil
}

func (r *CompanyRepository) ExistsByNIT(ctx context.Context, nit string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&domain.Company{}).
		Where("nit = ?", nit).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
