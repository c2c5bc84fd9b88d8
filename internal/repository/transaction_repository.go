package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lendcircle/internal/errors"
	"lendcircle/internal/model"
)

// TransactionRepository is the append-only funding ledger. It exposes insert,
// lookup, status update and aggregation, and it refuses deletion: Delete and
// DeleteByLoanProfile exist only to fail. The model's BeforeDelete hook backs
// this up at the storage layer for any code path that bypasses the repository.
type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	Save(ctx context.Context, txn *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	ListByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) ([]model.Transaction, error)
	ListByLender(ctx context.Context, lenderID uint) ([]model.Transaction, error)
	SumCompletedAmount(ctx context.Context, loanProfileID uuid.UUID) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) Save(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var txn model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) ListByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.WithContext(ctx).
		Where("loan_profile_id = ?", loanProfileID).
		Order("transaction_date DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) ListByLender(ctx context.Context, lenderID uint) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("transaction_date DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// SumCompletedAmount returns the exact fixed-point sum of completed
// transaction amounts for a loan profile. Recomputed on every call; returns
// decimal zero when no completed transactions exist.
func (r *transactionRepository) SumCompletedAmount(ctx context.Context, loanProfileID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("loan_profile_id = ? AND status = ?", loanProfileID, model.TransactionStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Delete always fails: the ledger is append-only.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.ErrImmutableRecord
}

// DeleteByLoanProfile always fails: bulk deletion is not allowed either.
func (r *transactionRepository) DeleteByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) error {
	return errors.ErrImmutableRecord
}
