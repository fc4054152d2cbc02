package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/empleos/employment-portal/internal/core/domain"
)

// TokenRepository persists auth tokens through gorm.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, t *domain.Token) error {
	result := r.db.WithContext(ctx).Create(t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRow
		}
		return fmt.Errorf("insert token: %w", result.Error)
	}
	return nil
}

func (r *TokenRepository) FindByKey(ctx context.Context, key string) (*domain.Token, error) {
	var t domain.Token
	result := r.db.WithContext(ctx).First(&t, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find token: %w", result.Error)
	}
	return &t, nil
}

func (r *TokenRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Token, error) {
	var t domain.Token
	result := r.db.WithContext(ctx).First(&t, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find token: %w", result.Error)
	}
	return &t, nil
}
