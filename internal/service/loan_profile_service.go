package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lendcircle/internal/errors"
	"lendcircle/internal/model"
	"lendcircle/internal/repository"
)

const defaultLoanDurationMonths = 12

// FundedLoanProfile is a loan profile together with its derived funding
// figure. The figure is never stored; it is recomputed from the ledger on
// every read.
type FundedLoanProfile struct {
	model.LoanProfile
	AmountFundedToDate decimal.Decimal `json:"amount_funded_to_date"`
}

// CreateLoanProfileInput carries the borrower-supplied fields for a new
// funding request.
type CreateLoanProfileInput struct {
	PhotoURL              string
	Title                 string
	Description           string
	BusinessType          string
	LoanDurationMonths    int
	TotalAmountRequired   decimal.Decimal
	DeadlineToReceiveLoan time.Time
}

// LoanProfileService manages funding requests and their derived funding total.
type LoanProfileService interface {
	CreateLoanProfile(ctx context.Context, userID uint, input CreateLoanProfileInput) (*model.LoanProfile, error)
	GetLoanProfile(ctx context.Context, id uuid.UUID) (*FundedLoanProfile, error)
	ListLoanProfiles(ctx context.Context) ([]FundedLoanProfile, error)
	ListByUser(ctx context.Context, userID uint) ([]model.LoanProfile, error)
	AmountFundedToDate(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	SetStatus(ctx context.Context, actorID uint, id uuid.UUID, status model.LoanProfileStatus) (*model.LoanProfile, error)
}

type loanProfileService struct {
	profileRepo repository.LoanProfileRepository
	txnRepo     repository.TransactionRepository
	userRepo    repository.UserRepository
}

// NewLoanProfileService creates a new loan profile service.
func NewLoanProfileService(
	profileRepo repository.LoanProfileRepository,
	txnRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
) LoanProfileService {
	return &loanProfileService{
		profileRepo: profileRepo,
		txnRepo:     txnRepo,
		userRepo:    userRepo,
	}
}

// CreateLoanProfile records a new funding request owned by userID.
func (s *loanProfileService) CreateLoanProfile(ctx context.Context, userID uint, input CreateLoanProfileInput) (*model.LoanProfile, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if input.LoanDurationMonths <= 0 {
		input.LoanDurationMonths = defaultLoanDurationMonths
	}
	if input.DeadlineToReceiveLoan.IsZero() {
		input.DeadlineToReceiveLoan = time.Now().AddDate(1, 0, 0)
	}

	profile := &model.LoanProfile{
		UserID:                userID,
		PhotoURL:              input.PhotoURL,
		Title:                 input.Title,
		Description:           input.Description,
		BusinessType:          input.BusinessType,
		LoanDurationMonths:    input.LoanDurationMonths,
		TotalAmountRequired:   input.TotalAmountRequired,
		DeadlineToReceiveLoan: input.DeadlineToReceiveLoan,
		Status:                model.LoanProfileStatusPending,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create loan profile: %w", err)
	}
	return profile, nil
}

// GetLoanProfile returns a loan profile with its funded-to-date figure.
func (s *loanProfileService) GetLoanProfile(ctx context.Context, id uuid.UUID) (*FundedLoanProfile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLoanProfileNotFound
		}
		return nil, fmt.Errorf("find loan profile: %w", err)
	}

	funded, err := s.txnRepo.SumCompletedAmount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sum completed transactions: %w", err)
	}

	return &FundedLoanProfile{LoanProfile: *profile, AmountFundedToDate: funded}, nil
}

// ListLoanProfiles returns all profiles, newest first, each with its funded
// figure.
func (s *loanProfileService) ListLoanProfiles(ctx context.Context) ([]FundedLoanProfile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]FundedLoanProfile, 0, len(profiles))
	for _, p := range profiles {
		funded, err := s.txnRepo.SumCompletedAmount(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("sum completed transactions for %s: %w", p.ID, err)
		}
		out = append(out, FundedLoanProfile{LoanProfile: p, AmountFundedToDate: funded})
	}
	return out, nil
}

func (s *loanProfileService) ListByUser(ctx context.Context, userID uint) ([]model.LoanProfile, error) {
	return s.profileRepo.ListByUser(ctx, userID)
}

// AmountFundedToDate computes the funding total for one profile. Pure read,
// no side effects; exact decimal zero when nothing completed.
func (s *loanProfileService) AmountFundedToDate(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.profileRepo.FindByID(ctx, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, errors.ErrLoanProfileNotFound
		}
		return decimal.Zero, fmt.Errorf("find loan profile: %w", err)
	}
	return s.txnRepo.SumCompletedAmount(ctx, id)
}

// SetStatus transitions a loan profile between pending, approved and
// rejected. Administrative action: the actor must hold the admin role.
func (s *loanProfileService) SetStatus(ctx context.Context, actorID uint, id uuid.UUID, status model.LoanProfileStatus) (*model.LoanProfile, error) {
	switch status {
	case model.LoanProfileStatusPending, model.LoanProfileStatusApproved, model.LoanProfileStatusRejected:
	default:
		return nil, errors.ErrInvalidStatus
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if actor.Role != model.RoleAdmin {
		return nil, errors.ErrAdminOnly
	}

	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLoanProfileNotFound
		}
		return nil, fmt.Errorf("find loan profile: %w", err)
	}

	profile.Status = status
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update loan profile: %w", err)
	}
	return profile, nil
}
