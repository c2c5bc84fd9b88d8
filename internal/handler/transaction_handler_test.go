package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "lendcircle/internal/errors"
	"lendcircle/internal/model"
)

// MockLedgerService is a mock implementation of service.LedgerService.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordTransaction(ctx context.Context, lenderID uint, loanProfileID uuid.UUID, amount decimal.Decimal, method model.PaymentMethod, status model.TransactionStatus) (*model.Transaction, error) {
	args := m.Called(ctx, lenderID, loanProfileID, amount, method, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockLedgerService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) (*model.Transaction, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockLedgerService) GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListByLoanProfile(ctx context.Context, loanProfileID uuid.UUID) ([]model.Transaction, error) {
	args := m.Called(ctx, loanProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListByLender(ctx context.Context, lenderID uint) ([]model.Transaction, error) {
	args := m.Called(ctx, lenderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// setIdentity installs the context value the JWT middleware would set.
func setIdentity(c echo.Context, userID uint, email string, role model.UserRole) {
	c.Set("user", &jwtv5.Token{Claims: jwtv5.MapClaims{
		"user_id": float64(userID),
		"email":   email,
		"role":    string(role),
	}})
}

func TestRecordTransaction_Success(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	profileID := uuid.New()
	txn := &model.Transaction{
		ID:            uuid.New(),
		LoanProfileID: profileID,
		LenderID:      7,
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: model.PaymentMethodPayPal,
		Status:        model.TransactionStatusCompleted,
	}
	ledger.On("RecordTransaction", mock.Anything, uint(7), profileID,
		decimal.RequireFromString("100.00"), model.PaymentMethodPayPal, model.TransactionStatusCompleted).
		Return(txn, nil)

	body := `{"loan_profile_id":"` + profileID.String() + `","amount":"100.00","payment_method":"paypal","status":"completed"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/transactions", body)
	setIdentity(c, 7, "lender@example.com", model.RoleLender)

	err := h.RecordTransaction(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), profileID.String())
	ledger.AssertExpectations(t)
}

func TestRecordTransaction_RoleViolation(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	profileID := uuid.New()
	ledger.On("RecordTransaction", mock.Anything, uint(9), profileID,
		mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrRoleViolation)

	body := `{"loan_profile_id":"` + profileID.String() + `","amount":"50.00"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/transactions", body)
	setIdentity(c, 9, "borrower@example.com", model.RoleBorrower)

	err := h.RecordTransaction(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "ROLE_VIOLATION", resp.Code)
}

func TestRecordTransaction_NegativeAmount(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	profileID := uuid.New()
	ledger.On("RecordTransaction", mock.Anything, uint(7), profileID,
		decimal.RequireFromString("-5.00"), mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrInvalidAmount)

	body := `{"loan_profile_id":"` + profileID.String() + `","amount":"-5.00"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/transactions", body)
	setIdentity(c, 7, "lender@example.com", model.RoleLender)

	err := h.RecordTransaction(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "INVALID_AMOUNT", resp.Code)
}

func TestRecordTransaction_MalformedAmount(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	body := `{"loan_profile_id":"` + uuid.NewString() + `","amount":"not-a-number"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/transactions", body)
	setIdentity(c, 7, "lender@example.com", model.RoleLender)

	err := h.RecordTransaction(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	ledger.AssertNotCalled(t, "RecordTransaction",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordTransaction_MissingIdentity(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	body := `{"loan_profile_id":"` + uuid.NewString() + `","amount":"10.00"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/transactions", body)

	err := h.RecordTransaction(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestDeleteTransaction_AlwaysForbidden(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	id := uuid.New()
	ledger.On("DeleteTransaction", mock.Anything, id).Return(apperrors.ErrImmutableRecord)

	c, _ := newTestContext(t, http.MethodDelete, "/api/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	setIdentity(c, 1, "admin@example.com", model.RoleAdmin)

	err := h.DeleteTransaction(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "IMMUTABLE_RECORD", resp.Code)
}

func TestUpdateStatus_Invalid(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	id := uuid.New()
	ledger.On("UpdateStatus", mock.Anything, id, model.TransactionStatus("done")).
		Return(nil, apperrors.ErrInvalidStatus)

	c, _ := newTestContext(t, http.MethodPatch, "/api/transactions/"+id.String()+"/status", `{"status":"done"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := h.UpdateStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestListByLoanProfile(t *testing.T) {
	ledger := new(MockLedgerService)
	h := NewTransactionHandler(ledger)

	profileID := uuid.New()
	ledger.On("ListByLoanProfile", mock.Anything, profileID).Return([]model.Transaction{
		{ID: uuid.New(), LoanProfileID: profileID, LenderID: 7, Amount: decimal.RequireFromString("10.00")},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/loan-profiles/"+profileID.String()+"/transactions", "")
	c.SetParamNames("id")
	c.SetParamValues(profileID.String())

	err := h.ListByLoanProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), profileID.String())
}
