package entity

import (
	"testing"
	"time"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	coremocks "github.com/astrodash/astro-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func(t *testing.T) *coremocks.MockTimeProvider {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		return mockTime
	}

	t.Run("Valid user with initial balance", func(t *testing.T) {
		user, err := NewUser(1, "Ananya Sharma", "ananya@example.com", "500.00", newTimeProvider(t))

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, int64(50000), user.Balance())
		assert.Equal(t, "500.00", user.FormattedBalance())
		assert.Equal(t, PackageBasic, user.Package)
		assert.Equal(t, StatusActive, user.Status)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Zero balance is accepted", func(t *testing.T) {
		user, err := NewUser(1, "Ananya", "a@example.com", "0.00", newTimeProvider(t))
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		_, err := NewUser(0, "Ananya", "a@example.com", "100.00", newTimeProvider(t))
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Invalid balance format", func(t *testing.T) {
		_, err := NewUser(1, "Ananya", "a@example.com", "not-a-number", newTimeProvider(t))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestBalanceOperations(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Credit increases balance and count", func(t *testing.T) {
		user, err := NewUser(1, "Test", "t@example.com", "100.00", mockTime)
		require.NoError(t, err)

		user.Credit(5000, mockTime)

		assert.Equal(t, int64(15000), user.Balance())
		assert.Equal(t, uint64(1), user.TransactionCount)
	})

	t.Run("Debit decreases balance", func(t *testing.T) {
		user, err := NewUser(1, "Test", "t@example.com", "100.00", mockTime)
		require.NoError(t, err)

		require.NoError(t, user.Debit(2500, mockTime))

		assert.Equal(t, int64(7500), user.Balance())
		assert.Equal(t, uint64(1), user.TransactionCount)
	})

	t.Run("Debit beyond balance is rejected without mutation", func(t *testing.T) {
		user, err := NewUser(1, "Test", "t@example.com", "100.00", mockTime)
		require.NoError(t, err)

		err = user.Debit(10001, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(10000), user.Balance())
		assert.Equal(t, uint64(0), user.TransactionCount)
	})

	t.Run("Debit of exactly the balance succeeds", func(t *testing.T) {
		user, err := NewUser(1, "Test", "t@example.com", "100.00", mockTime)
		require.NoError(t, err)

		require.NoError(t, user.Debit(10000, mockTime))
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("CanAfford", func(t *testing.T) {
		user, err := NewUser(1, "Test", "t@example.com", "499.00", mockTime)
		require.NoError(t, err)

		assert.True(t, user.CanAfford(49900))
		assert.True(t, user.CanAfford(100))
		assert.False(t, user.CanAfford(49901))
	})
}

func TestIsActive(t *testing.T) {
	user := &User{Status: StatusActive}
	assert.True(t, user.IsActive())

	user.Status = StatusBlocked
	assert.False(t, user.IsActive())

	user.Status = StatusInactive
	assert.False(t, user.IsActive())
}

func TestStatusAndPackageValidation(t *testing.T) {
	assert.True(t, IsValidStatus("Active"))
	assert.True(t, IsValidStatus("Inactive"))
	assert.True(t, IsValidStatus("Blocked"))
	assert.False(t, IsValidStatus("active"))
	assert.False(t, IsValidStatus(""))

	assert.True(t, IsValidPackage("Basic"))
	assert.True(t, IsValidPackage("Premium"))
	assert.False(t, IsValidPackage("Gold"))
}
