package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lendcircle/internal/errors"
	"lendcircle/internal/model"
	"lendcircle/internal/repository"
)

// LedgerService records funding events and guards the ledger invariants:
// only lenders initiate transactions, amounts are never negative, and
// records are never deleted.
type LedgerService interface {
	RecordTransaction(ctx context.Context, lenderID uint, loanProfileID uuid.UUID, amount decimal.Decimal, method model.PaymentMethod, status model.TransactionStatus) (*model.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) (*model.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	ListByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) ([]model.Transaction, error)
	ListByLender(ctx context.Context, lenderID uint) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type ledgerService struct {
	txnRepo     repository.TransactionRepository
	userRepo    repository.UserRepository
	profileRepo repository.LoanProfileRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	txnRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	profileRepo repository.LoanProfileRepository,
) LedgerService {
	return &ledgerService{
		txnRepo:     txnRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// RecordTransaction persists one funding event. All preconditions are checked
// before anything is written, so a failed call leaves no partial record. The
// lender's role is checked at creation time only; later role changes do not
// invalidate recorded transactions.
func (s *ledgerService) RecordTransaction(
	ctx context.Context,
	lenderID uint,
	loanProfileID uuid.UUID,
	amount decimal.Decimal,
	method model.PaymentMethod,
	status model.TransactionStatus,
) (*model.Transaction, error) {
	if amount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	lender, err := s.userRepo.FindByID(ctx, lenderID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find lender: %w", err)
	}
	if !lender.IsLender() {
		return nil, errors.ErrRoleViolation
	}

	if _, err := s.profileRepo.FindByID(ctx, loanProfileID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLoanProfileNotFound
		}
		return nil, fmt.Errorf("find loan profile: %w", err)
	}

	if method == "" {
		method = model.PaymentMethodPayPal
	}
	if !method.Valid() {
		return nil, errors.ErrInvalidPaymentMethod
	}
	if status == "" {
		status = model.TransactionStatusPending
	}
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	txn := &model.Transaction{
		LoanProfileID: loanProfileID,
		LenderID:      lenderID,
		Amount:        amount,
		PaymentMethod: method,
		Status:        status,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return txn, nil
}

// UpdateStatus changes the processing status of an existing transaction.
// Status is the only field that may change after creation; the save also
// refreshes transaction_date to the write time.
func (s *ledgerService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) (*model.Transaction, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	txn, err := s.txnRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}

	txn.Status = status
	if err := s.txnRepo.Save(ctx, txn); err != nil {
		return nil, fmt.Errorf("save transaction: %w", err)
	}
	return txn, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.txnRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) ([]model.Transaction, error) {
	return s.txnRepo.ListByLoanProfile(ctx, loanProfileID)
}

func (s *ledgerService) ListByLender(ctx context.Context, lenderID uint) ([]model.Transaction, error) {
	return s.txnRepo.ListByLender(ctx, lenderID)
}

// DeleteTransaction always fails with ErrImmutableRecord. The route exists so
// callers get an explicit rejection rather than a 404.
func (s *ledgerService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.txnRepo.Delete(ctx, id)
}
