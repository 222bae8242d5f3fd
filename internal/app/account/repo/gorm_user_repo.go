package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/light-bringer/machinery-catalog/internal/app/account/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/account/domain"
	"github.com/light-bringer/machinery-catalog/internal/models/m_user"
)

// GormUserRepo implements UserRepository through gorm.
// The *gorm.DB must be opened with TranslateError so duplicate keys surface
// as gorm.ErrDuplicatedKey.
type GormUserRepo struct {
	db *gorm.DB
}

var _ contracts.UserRepository = (*GormUserRepo)(nil)

// NewGormUserRepo creates a new GormUserRepo.
func NewGormUserRepo(db *gorm.DB) *GormUserRepo {
	return &GormUserRepo{db: db}
}

// FindByEmail looks a user up by normalized email.
func (r *GormUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec m_user.Record
	err := r.db.WithContext(ctx).
		Where(m_user.Email+" = ?", domain.NormalizeEmail(email)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	return &domain.User{
		ID:           rec.UserID,
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}, nil
}

// Create inserts the user.
func (r *GormUserRepo) Create(ctx context.Context, user *domain.User) error {
	rec := &m_user.Record{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        domain.NormalizeEmail(user.Email),
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailInUse
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
