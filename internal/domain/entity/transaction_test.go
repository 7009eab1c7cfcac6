package entity

import (
	"testing"
	"time"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	coremocks "github.com/astrodash/astro-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func(t *testing.T) *coremocks.MockTimeProvider {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		return mockTime
	}

	t.Run("Valid credit transaction", func(t *testing.T) {
		txn, err := NewTransaction(42, "ref-1", "credit", "150.50", "Wallet top-up", newTimeProvider(t))

		require.NoError(t, err)
		assert.Equal(t, uint64(42), txn.UserID)
		assert.Equal(t, "ref-1", txn.Reference)
		assert.Equal(t, TypeCredit, txn.Type)
		assert.Equal(t, "150.50", txn.Amount)
		assert.Equal(t, int64(15050), txn.AmountInPaise)
		assert.Equal(t, StatusCompleted, txn.Status)
		assert.Equal(t, fixedTime, txn.Timestamp)
	})

	t.Run("Amount is normalized to two decimal places", func(t *testing.T) {
		txn, err := NewTransaction(42, "ref-2", "debit", "699.5", "Report charge", newTimeProvider(t))

		require.NoError(t, err)
		assert.Equal(t, "699.50", txn.Amount)
		assert.Equal(t, int64(69950), txn.AmountInPaise)
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		_, err := NewTransaction(0, "ref-3", "credit", "10.00", "desc", newTimeProvider(t))
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Invalid transaction type", func(t *testing.T) {
		_, err := NewTransaction(42, "ref-4", "transfer", "10.00", "desc", newTimeProvider(t))
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})

	t.Run("Empty description", func(t *testing.T) {
		_, err := NewTransaction(42, "ref-5", "credit", "10.00", "   ", newTimeProvider(t))
		assert.ErrorIs(t, err, errs.ErrEmptyDescription)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := NewTransaction(42, "ref-6", "credit", "abc", "desc", newTimeProvider(t))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestBalanceChange(t *testing.T) {
	credit := &Transaction{Type: TypeCredit, AmountInPaise: 5000}
	debit := &Transaction{Type: TypeDebit, AmountInPaise: 5000}

	assert.Equal(t, int64(5000), credit.BalanceChange())
	assert.Equal(t, int64(-5000), debit.BalanceChange())
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
	assert.True(t, debit.IsDebit())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("credit"))
	assert.True(t, IsValidTransactionType("debit"))
	assert.False(t, IsValidTransactionType("Credit"))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
}

func TestIsValidTransactionStatus(t *testing.T) {
	assert.True(t, IsValidTransactionStatus("completed"))
	assert.True(t, IsValidTransactionStatus("pending"))
	assert.True(t, IsValidTransactionStatus("failed"))
	assert.False(t, IsValidTransactionStatus("done"))
	assert.False(t, IsValidTransactionStatus(""))
}
