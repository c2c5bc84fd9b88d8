package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lendcircle/internal/model"
	"lendcircle/internal/repository"
)

// SeedStats reports what a demo seed run created.
type SeedStats struct {
	Lenders      int `json:"lenders"`
	Borrowers    int `json:"borrowers"`
	LoanProfiles int `json:"loan_profiles"`
	Transactions int `json:"transactions"`
}

// SeedService populates a development database with sample lenders,
// borrowers, loan profiles and a few completed transactions. Existing users
// (matched by email) are left untouched, so the seed is re-runnable.
type SeedService interface {
	SeedDemoData(ctx context.Context) (*SeedStats, error)
}

type seedService struct {
	userRepo    repository.UserRepository
	profileRepo repository.LoanProfileRepository
	ledger      LedgerService
}

// NewSeedService creates a new seed service.
func NewSeedService(userRepo repository.UserRepository, profileRepo repository.LoanProfileRepository, ledger LedgerService) SeedService {
	return &seedService{userRepo: userRepo, profileRepo: profileRepo, ledger: ledger}
}

type seedBorrower struct {
	name     string
	title    string
	business string
	amount   string
	story    string
}

var seedLenders = []string{"Amina Diallo", "Lucas Meyer"}

var seedBorrowers = []seedBorrower{
	{"Rosa Mendez", "Expand corner grocery", "retail", "1200.00", "Second fridge for dairy stock."},
	{"Kofi Mensah", "Motorbike for deliveries", "logistics", "850.00", "Faster parcel runs across town."},
	{"Thuy Tran", "Sewing machines", "tailoring", "640.00", "Two extra machines for the workshop."},
	{"Ivan Petrov", "Greenhouse repair", "agriculture", "1500.00", "Replace storm-damaged panels."},
	{"Leila Haddad", "Cafe espresso machine", "food", "2000.00", "Upgrade from a single-group machine."},
}

func seedEmail(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	return strings.Join(parts, ".") + "@example.com"
}

func (s *seedService) getOrCreateUser(ctx context.Context, name string, role model.UserRole) (*model.User, bool, error) {
	email := seedEmail(name)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return existing, false, nil
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("lookup %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create %s: %w", email, err)
	}
	return user, true, nil
}

// SeedDemoData creates the sample dataset.
func (s *seedService) SeedDemoData(ctx context.Context) (*SeedStats, error) {
	stats := &SeedStats{}

	lenders := make([]*model.User, 0, len(seedLenders))
	for _, name := range seedLenders {
		user, created, err := s.getOrCreateUser(ctx, name, model.RoleLender)
		if err != nil {
			return stats, err
		}
		if created {
			stats.Lenders++
		}
		lenders = append(lenders, user)
	}

	for i, b := range seedBorrowers {
		user, created, err := s.getOrCreateUser(ctx, b.name, model.RoleBorrower)
		if err != nil {
			return stats, err
		}
		if !created {
			continue // profile and funding were seeded on a previous run
		}
		stats.Borrowers++

		amount, err := decimal.NewFromString(b.amount)
		if err != nil {
			return stats, fmt.Errorf("parse amount %q: %w", b.amount, err)
		}
		profile := &model.LoanProfile{
			UserID:                user.ID,
			Title:                 b.title,
			Description:           b.story,
			BusinessType:          b.business,
			LoanDurationMonths:    12,
			TotalAmountRequired:   amount,
			DeadlineToReceiveLoan: time.Now().AddDate(0, 0, 500),
			Status:                model.LoanProfileStatusPending,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return stats, fmt.Errorf("create profile for %s: %w", user.Email, err)
		}
		stats.LoanProfiles++

		// Fund every other profile with a completed ledger entry so the
		// funded-to-date figure has something to show.
		if i%2 == 0 {
			lender := lenders[i%len(lenders)]
			slice := amount.Div(decimal.NewFromInt(4)).Round(2)
			if _, err := s.ledger.RecordTransaction(ctx, lender.ID, profile.ID, slice, model.PaymentMethodBankTransfer, model.TransactionStatusCompleted); err != nil {
				return stats, fmt.Errorf("seed transaction for %s: %w", user.Email, err)
			}
			stats.Transactions++
		}
	}

	return stats, nil
}
