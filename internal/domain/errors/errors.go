// Package errors defines the application error contract and the predefined
// business error catalog. Error codes double as message-catalog keys for
// localization at the delivery layer.
package errors

import (
	"net/http"

	"gatedesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, also the message catalog key
	Message() string   // Default (English) user-facing message
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
	// Identity errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"Email address is already registered",
		"",
	)

	ErrPhoneInUse = NewBaseError(
		http.StatusBadRequest,
		"PHONE_IN_USE",
		"Phone number is already registered",
		"",
	)

	ErrIDNumberInUse = NewBaseError(
		http.StatusBadRequest,
		"ID_NUMBER_IN_USE",
		"ID number is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrEmailNotConfirmed = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_CONFIRMED",
		"Email address has not been confirmed",
		"",
	)

	ErrInvalidConfirmationToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONFIRMATION_TOKEN",
		"Invalid confirmation token",
		"",
	)

	ErrConfirmationTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"CONFIRMATION_TOKEN_EXPIRED",
		"Confirmation token has expired",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Current password is incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)

	ErrNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHORIZED",
		"You are not authorized to perform this action",
		"",
	)

	// Entitlement errors
	ErrNoActivePlan = NewBaseError(
		http.StatusForbidden,
		"NO_ACTIVE_PLAN",
		"No active plan found for this user",
		"",
	)

	ErrBuildingCreditExceeded = NewBaseError(
		http.StatusForbidden,
		"BUILDING_CREDIT_EXCEEDED",
		"Building credit limit exceeded for the active plan",
		"",
	)

	ErrUserCreditExceeded = NewBaseError(
		http.StatusForbidden,
		"USER_CREDIT_EXCEEDED",
		"User credit limit exceeded for the active plan",
		"",
	)

	// Catalog errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Plan not found",
		"",
	)

	ErrActivePlanNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVE_PLAN_NOT_FOUND",
		"Active plan not found",
		"",
	)

	// Ledger errors
	ErrCreditTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"CREDIT_TRANSACTION_NOT_FOUND",
		"Credit transaction not found",
		"",
	)

	// Building errors
	ErrBuildingNotFound = NewBaseError(
		http.StatusNotFound,
		"BUILDING_NOT_FOUND",
		"Building not found",
		"",
	)

	ErrAlreadyActive = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_ACTIVE",
		"Record is already active",
		"",
	)

	ErrAlreadyInactive = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_INACTIVE",
		"Record is already inactive",
		"",
	)

	// Doorman errors
	ErrDoormanNotFound = NewBaseError(
		http.StatusNotFound,
		"DOORMAN_NOT_FOUND",
		"Doorman not found",
		"",
	)

	ErrInvalidDoorman = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DOORMAN",
		"User does not hold the doorman role",
		"",
	)

	ErrDoormanAlreadyAssigned = NewBaseError(
		http.StatusBadRequest,
		"DOORMAN_ALREADY_ASSIGNED",
		"Doorman is already assigned to this building",
		"",
	)

	ErrAssignmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSIGNMENT_NOT_FOUND",
		"Doorman assignment not found",
		"",
	)

	// Visitor / visit errors
	ErrVisitorNotFound = NewBaseError(
		http.StatusNotFound,
		"VISITOR_NOT_FOUND",
		"Visitor not found",
		"",
	)

	ErrVisitNotFound = NewBaseError(
		http.StatusNotFound,
		"VISIT_NOT_FOUND",
		"Visit not found",
		"",
	)

	ErrDuplicateVisit = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_VISIT",
		"A visit for this visitor, building and check-in already exists",
		"",
	)

	ErrVisitAlreadyClosed = NewBaseError(
		http.StatusConflict,
		"VISIT_ALREADY_CLOSED",
		"Visit is already completed or cancelled",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying storage error for diagnosis.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
