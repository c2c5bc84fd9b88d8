package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"lendcircle/internal/errors"
	"lendcircle/internal/model"
	"lendcircle/internal/service"
)

// TransactionHandler handles funding ledger endpoints.
type TransactionHandler struct {
	ledger service.LedgerService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(ledger service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// RecordTransactionRequest represents a funding event submission. The lender
// is always the authenticated caller; amount_funded_to_date can never be set
// through this or any other request.
type RecordTransactionRequest struct {
	LoanProfileID string `json:"loan_profile_id" validate:"required,uuid"`
	Amount        string `json:"amount" validate:"required"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Status        string `json:"status,omitempty"`
}

// UpdateTransactionStatusRequest changes a transaction's processing status.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RecordTransaction godoc
// @Summary Record a funding transaction from the authenticated lender
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordTransactionRequest true "Transaction data"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) RecordTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req RecordTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	loanProfileID, err := uuid.Parse(req.LoanProfileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid loan_profile_id",
			Code:  "INVALID_UUID",
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	txn, err := h.ledger.RecordTransaction(
		c.Request().Context(),
		claims.UserID,
		loanProfileID,
		amount,
		model.PaymentMethod(req.PaymentMethod),
		model.TransactionStatus(req.Status),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, txn)
}

// ListByLoanProfile godoc
// @Summary List transactions recorded against a loan profile
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan profile ID"
// @Success 200 {array} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Router /loan-profiles/{id}/transactions [get]
func (h *TransactionHandler) ListByLoanProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid loan profile id",
			Code:  "INVALID_UUID",
		})
	}

	txns, err := h.ledger.ListByLoanProfile(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txns)
}

// UpdateStatus godoc
// @Summary Update a transaction's processing status
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions/{id}/status [patch]
func (h *TransactionHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid transaction id",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateTransactionStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	txn, err := h.ledger.UpdateStatus(c.Request().Context(), id, model.TransactionStatus(req.Status))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txn)
}

// DeleteTransaction godoc
// @Summary Delete a transaction (always rejected; the ledger is append-only)
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid transaction id",
			Code:  "INVALID_UUID",
		})
	}

	err = h.ledger.DeleteTransaction(c.Request().Context(), id)
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
