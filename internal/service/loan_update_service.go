package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lendcircle/internal/errors"
	"lendcircle/internal/model"
	"lendcircle/internal/repository"
)

// LoanUpdateService manages the append-only progress log on loan profiles.
type LoanUpdateService interface {
	AddUpdate(ctx context.Context, loanProfileID uuid.UUID, updateType model.LoanUpdateType, body string) (*model.LoanUpdate, error)
	ListUpdates(ctx context.Context, loanProfileID uuid.UUID) ([]model.LoanUpdate, error)
}

type loanUpdateService struct {
	updateRepo  repository.LoanUpdateRepository
	profileRepo repository.LoanProfileRepository
}

// NewLoanUpdateService creates a new loan update service.
func NewLoanUpdateService(updateRepo repository.LoanUpdateRepository, profileRepo repository.LoanProfileRepository) LoanUpdateService {
	return &loanUpdateService{updateRepo: updateRepo, profileRepo: profileRepo}
}

// AddUpdate appends a note to a loan profile's log.
func (s *loanUpdateService) AddUpdate(ctx context.Context, loanProfileID uuid.UUID, updateType model.LoanUpdateType, body string) (*model.LoanUpdate, error) {
	if _, err := s.profileRepo.FindByID(ctx, loanProfileID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLoanProfileNotFound
		}
		return nil, fmt.Errorf("find loan profile: %w", err)
	}

	if updateType == "" {
		updateType = model.LoanUpdateTypeGeneral
	}
	if !updateType.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	update := &model.LoanUpdate{
		LoanProfileID: loanProfileID,
		UpdateType:    updateType,
		Body:          body,
	}
	if err := s.updateRepo.Create(ctx, update); err != nil {
		return nil, fmt.Errorf("create loan update: %w", err)
	}
	return update, nil
}

func (s *loanUpdateService) ListUpdates(ctx context.Context, loanProfileID uuid.UUID) ([]model.LoanUpdate, error) {
	if _, err := s.profileRepo.FindByID(ctx, loanProfileID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLoanProfileNotFound
		}
		return nil, fmt.Errorf("find loan profile: %w", err)
	}
	return s.updateRepo.ListByLoanProfile(ctx, loanProfileID)
}
