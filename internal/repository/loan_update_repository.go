package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lendcircle/internal/model"
)

// LoanUpdateRepository defines persistence for the append-only update log.
type LoanUpdateRepository interface {
	Create(ctx context.Context, update *model.LoanUpdate) error
	ListByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) ([]model.LoanUpdate, error)
}

type loanUpdateRepository struct {
	db *gorm.DB
}

// NewLoanUpdateRepository creates a new loan update repository.
func NewLoanUpdateRepository(db *gorm.DB) LoanUpdateRepository {
	return &loanUpdateRepository{db: db}
}

func (r *loanUpdateRepository) Create(ctx context.Context, update *model.LoanUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *loanUpdateRepository) ListByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) ([]model.LoanUpdate, error) {
	var updates []model.LoanUpdate
	err := r.db.WithContext(ctx).
		Where("loan_profile_id = ?", loanProfileID).
		Order("created_at DESC").
		Find(&updates).Error
	if err != nil {
		return nil, err
	}
	return updates, nil
}
