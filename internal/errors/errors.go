package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidAmount is returned when a transaction amount is negative.
	ErrInvalidAmount = errors.New("transaction amount cannot be negative")
	// ErrRoleViolation is returned when a non-lender attempts to initiate a transaction.
	ErrRoleViolation = errors.New("transaction must be initiated by a lender")
	// ErrImmutableRecord is returned on any attempt to delete a transaction.
	ErrImmutableRecord = errors.New("transactions cannot be deleted")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrLoanProfileNotFound is returned when a loan profile is not found.
	ErrLoanProfileNotFound = errors.New("loan profile not found")
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidStatus is returned when an unknown status value is submitted.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidPaymentMethod is returned when an unknown payment method is submitted.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrAdminOnly is returned when a non-admin attempts an administrative action.
	ErrAdminOnly = errors.New("administrator role required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrRoleViolation):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ROLE_VIOLATION")
	case errors.Is(err, ErrImmutableRecord):
		return NewHTTPError(http.StatusForbidden, err.Error(), "IMMUTABLE_RECORD")
	case errors.Is(err, ErrAdminOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrLoanProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOAN_PROFILE_NOT_FOUND")
	case errors.Is(err, ErrTransactionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrInvalidPaymentMethod):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PAYMENT_METHOD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
