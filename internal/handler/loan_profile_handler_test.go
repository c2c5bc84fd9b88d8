package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lendcircle/internal/model"
	"lendcircle/internal/service"
)

// MockLoanProfileService is a mock implementation of service.LoanProfileService.
type MockLoanProfileService struct {
	mock.Mock
}

func (m *MockLoanProfileService) CreateLoanProfile(ctx context.Context, userID uint, input service.CreateLoanProfileInput) (*model.LoanProfile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoanProfile), args.Error(1)
}

func (m *MockLoanProfileService) GetLoanProfile(ctx context.Context, id uuid.UUID) (*service.FundedLoanProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FundedLoanProfile), args.Error(1)
}

func (m *MockLoanProfileService) ListLoanProfiles(ctx context.Context) ([]service.FundedLoanProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FundedLoanProfile), args.Error(1)
}

func (m *MockLoanProfileService) ListByUser(ctx context.Context, userID uint) ([]model.LoanProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LoanProfile), args.Error(1)
}

func (m *MockLoanProfileService) AmountFundedToDate(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLoanProfileService) SetStatus(ctx context.Context, actorID uint, id uuid.UUID, status model.LoanProfileStatus) (*model.LoanProfile, error) {
	args := m.Called(ctx, actorID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoanProfile), args.Error(1)
}

func TestCreateLoanProfile_ParsesDeadline(t *testing.T) {
	svc := new(MockLoanProfileService)
	h := NewLoanProfileHandler(svc)

	svc.On("CreateLoanProfile", mock.Anything, uint(7), mock.MatchedBy(func(in service.CreateLoanProfileInput) bool {
		y, mo, d := in.DeadlineToReceiveLoan.Date()
		return in.Title == "Sewing machines" &&
			in.TotalAmountRequired.Equal(decimal.RequireFromString("640.00")) &&
			y == 2027 && mo == 3 && d == 15
	})).Return(&model.LoanProfile{ID: uuid.New(), UserID: 7, Title: "Sewing machines"}, nil)

	body := `{"title":"Sewing machines","total_amount_required":"640.00","deadline_to_receive_loan":"2027-03-15"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/loan-profiles", body)
	setIdentity(c, 7, "thuy@example.com", model.RoleBorrower)

	err := h.CreateLoanProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateLoanProfile_MalformedDeadline(t *testing.T) {
	svc := new(MockLoanProfileService)
	h := NewLoanProfileHandler(svc)

	// Wrong layout never reaches the service, whichever guard catches it.
	body := `{"title":"Sewing machines","total_amount_required":"640.00","deadline_to_receive_loan":"15/03/2027"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/loan-profiles", body)
	setIdentity(c, 7, "thuy@example.com", model.RoleBorrower)

	err := h.CreateLoanProfile(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	svc.AssertNotCalled(t, "CreateLoanProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLoanProfile_NegativeAmount(t *testing.T) {
	svc := new(MockLoanProfileService)
	h := NewLoanProfileHandler(svc)

	body := `{"title":"Sewing machines","total_amount_required":"-640.00"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/loan-profiles", body)
	setIdentity(c, 7, "thuy@example.com", model.RoleBorrower)

	err := h.CreateLoanProfile(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	svc.AssertNotCalled(t, "CreateLoanProfile", mock.Anything, mock.Anything, mock.Anything)
}
