package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lendcircle/internal/errors"
	"lendcircle/internal/model"
	"lendcircle/internal/service"
)

// LoanUpdateHandler handles the append-only loan update log.
type LoanUpdateHandler struct {
	updateService service.LoanUpdateService
}

// NewLoanUpdateHandler creates a new loan update handler.
func NewLoanUpdateHandler(updateService service.LoanUpdateService) *LoanUpdateHandler {
	return &LoanUpdateHandler{updateService: updateService}
}

// AddLoanUpdateRequest represents a new update note.
type AddLoanUpdateRequest struct {
	UpdateType string `json:"update_type,omitempty" validate:"omitempty,oneof=progress milestone repayment general"`
	Body       string `json:"body" validate:"required"`
}

// AddUpdate godoc
// @Summary Append an update note to a loan profile
// @Tags loan-updates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan profile ID"
// @Param request body AddLoanUpdateRequest true "Update data"
// @Success 201 {object} model.LoanUpdate
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /loan-profiles/{id}/updates [post]
func (h *LoanUpdateHandler) AddUpdate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid loan profile id",
			Code:  "INVALID_UUID",
		})
	}

	var req AddLoanUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update, err := h.updateService.AddUpdate(c.Request().Context(), id, model.LoanUpdateType(req.UpdateType), req.Body)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, update)
}

// ListUpdates godoc
// @Summary List update notes for a loan profile
// @Tags loan-updates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan profile ID"
// @Success 200 {array} model.LoanUpdate
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /loan-profiles/{id}/updates [get]
func (h *LoanUpdateHandler) ListUpdates(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid loan profile id",
			Code:  "INVALID_UUID",
		})
	}

	updates, err := h.updateService.ListUpdates(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updates)
}
