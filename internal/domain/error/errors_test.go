package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"Invalid user ID", ErrInvalidUserID, CodeInvalidUserID},
		{"User not found", ErrUserNotFound, CodeUserNotFound},
		{"User has references", ErrUserHasReferences, CodeUserHasReferences},
		{"User blocked", ErrUserBlocked, CodeUserBlocked},
		{"Report not found", ErrReportNotFound, CodeReportNotFound},
		{"Report already final", ErrReportAlreadyFinal, CodeReportAlreadyFinal},
		{"Unknown report type", ErrUnknownReportType, CodeUnknownReportType},
		{"Duplicate transaction", ErrDuplicateTransaction, CodeDuplicateTransaction},
		{"Kundli computation", ErrKundliComputation, CodeKundliComputation},
		{"Content generation", ErrContentGeneration, CodeContentGeneration},
		{"Render failed", ErrRenderFailed, CodeRenderFailed},
		{"Render timeout", ErrRenderTimeout, CodeRenderFailed},
		{"Browser launch", ErrBrowserLaunch, CodeRenderFailed},
		{"Invalid transaction type", ErrInvalidTransactionType, CodeInvalidRequest},
		{"Empty description", ErrEmptyDescription, CodeInvalidRequest},
		{"Invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"Internal server", ErrInternalServer, CodeInternalServer},
		{"Unknown error", errors.New("some unknown error"), CodeInternalServer},
		{"Wrapped insufficient balance", fmt.Errorf("context: %w", ErrInsufficientBalance), CodeInsufficientBalance},
		{"Wrapped unknown report type", fmt.Errorf("context: %w", ErrUnknownReportType), CodeUnknownReportType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(42, "699.00", "150.00")

	t.Run("Error message contains both amounts", func(t *testing.T) {
		assert.Contains(t, err.Error(), "user 42")
		assert.Contains(t, err.Error(), "required 699.00")
		assert.Contains(t, err.Error(), "available 150.00")
	})

	t.Run("Matches the sentinel via errors.Is", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, CodeInsufficientBalance, ErrorCode(err))
	})

	t.Run("LogFields carries structured context", func(t *testing.T) {
		var detailed *InsufficientBalanceError
		require.ErrorAs(t, err, &detailed)

		fields := detailed.LogFields()
		assert.Equal(t, "insufficient_balance", fields["error_type"])
		assert.Equal(t, uint64(42), fields["user_id"])
		assert.Equal(t, "699.00", fields["required"])
		assert.Equal(t, "150.00", fields["available"])
		assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
	})
}

func TestPipelineError(t *testing.T) {
	err := NewPipelineError("kundli", 7, "Wealth Report", ErrKundliComputation)

	t.Run("Error message names the stage and report", func(t *testing.T) {
		assert.Contains(t, err.Error(), `stage "kundli"`)
		assert.Contains(t, err.Error(), "user 7")
		assert.Contains(t, err.Error(), "Wealth Report")
	})

	t.Run("Unwraps to the stage error", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrKundliComputation)
		assert.Equal(t, CodeKundliComputation, ErrorCode(err))
	})

	t.Run("LogFields carries the stage and the inner code", func(t *testing.T) {
		var pipeline *PipelineError
		require.ErrorAs(t, err, &pipeline)

		fields := pipeline.LogFields()
		assert.Equal(t, "pipeline_error", fields["error_type"])
		assert.Equal(t, "kundli", fields["stage"])
		assert.Equal(t, uint64(7), fields["user_id"])
		assert.Equal(t, "Wealth Report", fields["report_type"])
		assert.Equal(t, CodeKundliComputation, fields["error_code"])
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("IsInsufficientBalanceError", func(t *testing.T) {
		assert.True(t, IsInsufficientBalanceError(ErrInsufficientBalance))
		assert.True(t, IsInsufficientBalanceError(NewInsufficientBalanceError(1, "10.00", "5.00")))
		assert.False(t, IsInsufficientBalanceError(ErrUserNotFound))
	})

	t.Run("IsUserNotFoundError", func(t *testing.T) {
		assert.True(t, IsUserNotFoundError(ErrUserNotFound))
		assert.True(t, IsUserNotFoundError(fmt.Errorf("lookup: %w", ErrUserNotFound)))
		assert.False(t, IsUserNotFoundError(ErrNotFound))
	})

	t.Run("IsNotFoundError", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrReportNotFound))
		assert.False(t, IsNotFoundError(ErrInvalidAmount))
	})

	t.Run("IsValidationError", func(t *testing.T) {
		assert.True(t, IsValidationError(ErrInvalidAmount))
		assert.True(t, IsValidationError(ErrNegativeAmount))
		assert.True(t, IsValidationError(ErrInvalidUserID))
		assert.True(t, IsValidationError(ErrInvalidTransactionType))
		assert.True(t, IsValidationError(ErrEmptyDescription))
		assert.True(t, IsValidationError(ErrUnknownReportType))
		assert.False(t, IsValidationError(ErrInsufficientBalance))
		assert.False(t, IsValidationError(ErrInternalServer))
	})
}
