package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance  = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeInvalidRequest       = 4004
	CodeUserHasReferences    = 4005
	CodeUserBlocked          = 4006
	CodeReportAlreadyFinal   = 4007
	CodeUnknownReportType    = 4008
	CodeDuplicateTransaction = 4009
	CodeUserNotFound         = 4040
	CodeReportNotFound       = 4041

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeKundliComputation = 5001
	CodeContentGeneration = 5002
	CodeRenderFailed      = 5003
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a debit exceeds the wallet balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the amount format is invalid or not positive
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionType is returned when the type is neither credit nor debit
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrEmptyDescription is returned when a transaction carries no description
	ErrEmptyDescription = errors.New("transaction description cannot be empty")

	// ErrDuplicateTransaction is returned when a ledger reference collides
	// with an already recorded transaction
	ErrDuplicateTransaction = errors.New("transaction already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when creating a user whose email already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUserBlocked is returned when a blocked user attempts a gated operation
	ErrUserBlocked = errors.New("user is blocked")

	// ErrUserHasReferences is returned when deleting a user that transactions
	// or report history rows still reference
	ErrUserHasReferences = errors.New("user is referenced by transactions or reports")

	// ErrReportNotFound is returned when the requested report history entry doesn't exist
	ErrReportNotFound = errors.New("report history entry not found")

	// ErrReportAlreadyFinal is returned when updating a report history entry
	// that already reached a terminal status
	ErrReportAlreadyFinal = errors.New("report history entry is already in a terminal status")

	// ErrUnknownReportType is returned when the report type is not in the catalog
	ErrUnknownReportType = errors.New("unknown report type")

	// ErrKundliComputation is returned when the kundli service fails
	ErrKundliComputation = errors.New("kundli computation failed")

	// ErrContentGeneration is returned when the AI content call fails
	ErrContentGeneration = errors.New("content generation failed")

	// ErrRenderFailed is returned when PDF rendering fails
	ErrRenderFailed = errors.New("pdf rendering failed")

	// ErrRenderTimeout is returned when the page load exceeds the render timeout
	ErrRenderTimeout = errors.New("pdf render timed out")

	// ErrBrowserLaunch is returned when the headless browser cannot start
	ErrBrowserLaunch = errors.New("headless browser launch failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when the database is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrUserHasReferences):
		return CodeUserHasReferences
	case errors.Is(err, ErrUserBlocked):
		return CodeUserBlocked
	case errors.Is(err, ErrReportNotFound):
		return CodeReportNotFound
	case errors.Is(err, ErrReportAlreadyFinal):
		return CodeReportAlreadyFinal
	case errors.Is(err, ErrUnknownReportType):
		return CodeUnknownReportType
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrKundliComputation):
		return CodeKundliComputation
	case errors.Is(err, ErrContentGeneration):
		return CodeContentGeneration
	case errors.Is(err, ErrRenderFailed), errors.Is(err, ErrRenderTimeout), errors.Is(err, ErrBrowserLaunch):
		return CodeRenderFailed
	case errors.Is(err, ErrInvalidTransactionType), errors.Is(err, ErrEmptyDescription), errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError carries the available vs required amounts so the
// API message can state both
type InsufficientBalanceError struct {
	UserID    uint64
	Required  string
	Available string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, required, available string) error {
	return &InsufficientBalanceError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// PipelineError wraps a report generation stage failure with enough context
// to make the persisted failed history entry actionable
type PipelineError struct {
	Stage      string
	UserID     uint64
	ReportType string
	Err        error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	return fmt.Sprintf("report pipeline stage %q failed for user %d (report: %s): %v",
		e.Stage, e.UserID, e.ReportType, e.Err)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PipelineError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "pipeline_error",
		"stage":       e.Stage,
		"user_id":     e.UserID,
		"report_type": e.ReportType,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewPipelineError wraps a stage failure
func NewPipelineError(stage string, userID uint64, reportType string, err error) error {
	return &PipelineError{
		Stage:      stage,
		UserID:     userID,
		ReportType: reportType,
		Err:        err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReportNotFound)
}

// IsValidationError checks if the error is a client input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrUnknownReportType)
}
