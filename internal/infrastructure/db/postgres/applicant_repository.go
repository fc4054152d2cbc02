package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// ApplicantRepository persists applicants through gorm.
type ApplicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) Create(ctx context.Context, a *domain.Applicant) error {
	result := r.db.WithContext(ctx).Create(a)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRow
		}
		return fmt.Errorf("insert applicant: %w", result.Error)
	}
	return nil
}

func (r *ApplicantRepository) FindByID(ctx context.Context, id uint) (*domain.Applicant, error) {
	var a domain.Applicant
	result := r.db.WithContext(ctx).First(&a, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("find applicant: %w", result.Error)
	}
	return &a, nil
}

func (r *ApplicantRepository) FindByUsername(ctx context.Context, username string) (*domain.Applicant, error) {
	var a domain.Applicant
	result := r.db.WithContext(ctx).First(&a, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("find applicant: %w", result.Error)
	}
	return &a, nil
}

// List returns every applicant, most recently joined first.
func (r *ApplicantRepository) List(ctx context.Context) ([]*domain.Applicant, error) {
	var applicants []*domain.Applicant
	result := r.db.WithContext(ctx).Order("date_joined DESC").Find(&applicants)
	if result.Error != nil {
		return nil, fmt.Errorf("list applicants: %w", result.Error)
	}
	return applicants, nil
}

func (r *ApplicantRepository) Update(ctx context.Context, a *domain.Applicant) error {
	result := r.db.WithContext(ctx).Save(a)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRow
		}
		return fmt.Errorf("update applicant: %w", result.Error)
	}
	return nil
}

func (r *ApplicantRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Applicant{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete applicant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrApplicantNotFound
	}
	return nil
}

func (r *ApplicantRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.exists(ctx, "username = ?", username, excludeID)
}

func (r *ApplicantRepository) ExistsByIdentificationNumber(ctx context.Context, idNumber string, excludeID uint) (bool, error) {
	return r.exists(ctx, "identification_number = ?", idNumber, excludeID)
}

func (r *ApplicantRepository) exists(ctx context.Context, cond, value string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.Applicant{}).Where(cond, value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	result := q.Limit(1).Count(&count)
	return count > 0, result.Error
}
