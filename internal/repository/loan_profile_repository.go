package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lendcircle/internal/model"
)

// LoanProfileRepository defines loan profile persistence operations.
type LoanProfileRepository interface {
	Create(ctx context.Context, profile *model.LoanProfile) error
	Update(ctx context.Context, profile *model.LoanProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LoanProfile, error)
	List(ctx context.Context) ([]model.LoanProfile, error)
	ListByUser(ctx context.Context, userID uint) ([]model.LoanProfile, error)
}

type loanProfileRepository struct {
	db *gorm.DB
}

// NewLoanProfileRepository creates a new loan profile repository.
func NewLoanProfileRepository(db *gorm.DB) LoanProfileRepository {
	return &loanProfileRepository{db: db}
}

func (r *loanProfileRepository) Create(ctx context.Context, profile *model.LoanProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *loanProfileRepository) Update(ctx context.Context, profile *model.LoanProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *loanProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LoanProfile, error) {
	var profile model.LoanProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns loan profiles newest first.
func (r *loanProfileRepository) List(ctx context.Context) ([]model.LoanProfile, error) {
	var profiles []model.LoanProfile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *loanProfileRepository) ListByUser(ctx context.Context, userID uint) ([]model.LoanProfile, error) {
	var profiles []model.LoanProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
