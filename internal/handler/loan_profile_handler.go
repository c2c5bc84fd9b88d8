package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"lendcircle/internal/errors"
	"lendcircle/internal/model"
	"lendcircle/internal/service"
)

// LoanProfileHandler handles loan profile endpoints.
type LoanProfileHandler struct {
	profileService service.LoanProfileService
}

// NewLoanProfileHandler creates a new loan profile handler.
func NewLoanProfileHandler(profileService service.LoanProfileService) *LoanProfileHandler {
	return &LoanProfileHandler{profileService: profileService}
}

// CreateLoanProfileRequest represents a new funding request.
type CreateLoanProfileRequest struct {
	PhotoURL              string `json:"photo_url" validate:"omitempty,url"`
	Title                 string `json:"title" validate:"required"`
	Description           string `json:"description"`
	BusinessType          string `json:"business_type"`
	LoanDurationMonths    int    `json:"loan_duration_months" validate:"omitempty,min=1"`
	TotalAmountRequired   string `json:"total_amount_required" validate:"required"`
	DeadlineToReceiveLoan string `json:"deadline_to_receive_loan" validate:"omitempty,datetime=2006-01-02"`
}

// SetStatusRequest represents an administrative status transition.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// CreateLoanProfile godoc
// @Summary Create a loan profile owned by the authenticated user
// @Tags loan-profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLoanProfileRequest true "Loan profile data"
// @Success 201 {object} model.LoanProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /loan-profiles [post]
func (h *LoanProfileHandler) CreateLoanProfile(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateLoanProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amount, err := decimal.NewFromString(req.TotalAmountRequired)
	if err != nil || amount.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid total_amount_required",
			Code:  "INVALID_AMOUNT",
		})
	}

	var deadline time.Time
	if req.DeadlineToReceiveLoan != "" {
		deadline, err = time.Parse("2006-01-02", req.DeadlineToReceiveLoan)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid deadline_to_receive_loan",
				Code:  "INVALID_DATE",
			})
		}
	}

	profile, err := h.profileService.CreateLoanProfile(c.Request().Context(), claims.UserID, service.CreateLoanProfileInput{
		PhotoURL:              req.PhotoURL,
		Title:                 req.Title,
		Description:           req.Description,
		BusinessType:          req.BusinessType,
		LoanDurationMonths:    req.LoanDurationMonths,
		TotalAmountRequired:   amount,
		DeadlineToReceiveLoan: deadline,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, profile)
}

// ListLoanProfiles godoc
// @Summary List loan profiles, newest first, with funded-to-date totals
// @Tags loan-profiles
// @Produce json
// @Success 200 {array} service.FundedLoanProfile
// @Router /loan-profiles [get]
func (h *LoanProfileHandler) ListLoanProfiles(c echo.Context) error {
	profiles, err := h.profileService.ListLoanProfiles(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetLoanProfile godoc
// @Summary Get a loan profile with its funded-to-date total
// @Tags loan-profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan profile ID"
// @Success 200 {object} service.FundedLoanProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /loan-profiles/{id} [get]
func (h *LoanProfileHandler) GetLoanProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid loan profile id",
			Code:  "INVALID_UUID",
		})
	}

	profile, err := h.profileService.GetLoanProfile(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// SetStatus godoc
// @Summary Transition a loan profile's status (admin only)
// @Tags loan-profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan profile ID"
// @Param request body SetStatusRequest true "New status"
// @Success 200 {object} model.LoanProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /loan-profiles/{id}/status [patch]
func (h *LoanProfileHandler) SetStatus(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid loan profile id",
			Code:  "INVALID_UUID",
		})
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.SetStatus(c.Request().Context(), claims.UserID, id, model.LoanProfileStatus(req.Status))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}
