package errors

import (
	"net/http"

	"manor/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Request validation errors
	ErrMissingParameter = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PARAMETER",
		"required parameter is missing",
		"",
	)

	ErrInvalidDateFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_FORMAT",
		"date must be in YYYY-MM-DD format",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_DATE_RANGE",
		"start date must not be after end date",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Estate hierarchy errors
	ErrEstateNotFound = NewBaseError(
		http.StatusNotFound,
		"ESTATE_NOT_FOUND",
		"estate not found",
		"",
	)

	ErrBlockNotFound = NewBaseError(
		http.StatusNotFound,
		"BLOCK_NOT_FOUND",
		"block not found",
		"",
	)

	ErrApartmentNotFound = NewBaseError(
		http.StatusNotFound,
		"APARTMENT_NOT_FOUND",
		"apartment not found",
		"",
	)

	ErrAmenityNotFound = NewBaseError(
		http.StatusNotFound,
		"AMENITY_NOT_FOUND",
		"amenity not found",
		"",
	)

	ErrFurnishingNotFound = NewBaseError(
		http.StatusNotFound,
		"FURNISHING_NOT_FOUND",
		"furnishing not found",
		"",
	)

	// Tenant-related errors
	ErrTenantNotFound = NewBaseError(
		http.StatusNotFound,
		"TENANT_NOT_FOUND",
		"tenant not found",
		"",
	)

	ErrTenantTypeNotFound = NewBaseError(
		http.StatusNotFound,
		"TENANT_TYPE_NOT_FOUND",
		"tenant type not found",
		"",
	)

	ErrApartmentOccupied = NewBaseError(
		http.StatusConflict,
		"APARTMENT_OCCUPIED",
		"apartment is already occupied",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"payment not found",
		"",
	)

	ErrPaymentStatusNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_STATUS_NOT_FOUND",
		"payment status not found",
		"",
	)

	ErrDuplicatePaymentPeriod = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_PAYMENT_PERIOD",
		"a payment for this tenant and period already exists",
		"",
	)

	// Complaint-related errors
	ErrComplaintNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPLAINT_NOT_FOUND",
		"complaint not found",
		"",
	)

	ErrComplaintStatusNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPLAINT_STATUS_NOT_FOUND",
		"complaint status not found",
		"",
	)

	ErrComplaintCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPLAINT_CATEGORY_NOT_FOUND",
		"complaint category not found",
		"",
	)

	// Authentication-related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired access token",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
