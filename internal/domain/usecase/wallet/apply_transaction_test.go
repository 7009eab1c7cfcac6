package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	coremocks "github.com/astrodash/astro-api/mocks/port/core"
	persistencemocks "github.com/astrodash/astro-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type walletFixture struct {
	useCase    *UseCase
	ledgerRepo *persistencemocks.MockLedgerRepository
	userRepo   *persistencemocks.MockUserRepository
}

func newWalletFixture(t *testing.T) *walletFixture {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	ledgerRepo := persistencemocks.NewMockLedgerRepository(t)
	userRepo := persistencemocks.NewMockUserRepository(t)

	return &walletFixture{
		useCase:    NewUseCase(ledgerRepo, userRepo, mockTime, mockLogger),
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
	}
}

func testUser(t *testing.T, id uint64, balance string) *entity.User {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	user, err := entity.NewUser(id, "Test User", "test@example.com", balance, mockTime)
	require.NoError(t, err)
	return user
}

func TestApplyTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful credit", func(t *testing.T) {
		f := newWalletFixture(t)
		user := testUser(t, 1, "600.00")

		f.ledgerRepo.EXPECT().
			Apply(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.UserID == 1 &&
					txn.Type == entity.TypeCredit &&
					txn.Amount == "100.00" &&
					txn.AmountInPaise == 10000 &&
					txn.Status == entity.StatusCompleted &&
					txn.Reference != "" &&
					txn.Description == "Wallet top-up"
			})).
			Return(user, nil).
			Once()

		result, err := f.useCase.ApplyTransaction(ctx, 1, "100.00", "credit", "Wallet top-up")

		require.NoError(t, err)
		assert.Equal(t, "600.00", result.NewBalance)
		assert.Equal(t, entity.TypeCredit, result.Transaction.Type)
	})

	t.Run("Successful debit normalizes the amount", func(t *testing.T) {
		f := newWalletFixture(t)
		user := testUser(t, 1, "300.50")

		f.ledgerRepo.EXPECT().
			Apply(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.Type == entity.TypeDebit && txn.Amount == "699.50"
			})).
			Return(user, nil).
			Once()

		result, err := f.useCase.ApplyTransaction(ctx, 1, "699.5", "debit", "Wealth Report generation")

		require.NoError(t, err)
		assert.Equal(t, "300.50", result.NewBalance)
	})

	t.Run("Each call gets a fresh reference", func(t *testing.T) {
		f := newWalletFixture(t)
		user := testUser(t, 1, "600.00")

		var references []string
		f.ledgerRepo.EXPECT().
			Apply(ctx, mock.Anything).
			Run(func(_ context.Context, txn *entity.Transaction) {
				references = append(references, txn.Reference)
			}).
			Return(user, nil).
			Times(2)

		_, err := f.useCase.ApplyTransaction(ctx, 1, "10.00", "credit", "First")
		require.NoError(t, err)
		_, err = f.useCase.ApplyTransaction(ctx, 1, "10.00", "credit", "Second")
		require.NoError(t, err)

		require.Len(t, references, 2)
		assert.NotEqual(t, references[0], references[1])
	})

	t.Run("Invalid inputs never reach the repository", func(t *testing.T) {
		tests := []struct {
			name        string
			userID      uint64
			amount      string
			txnType     string
			description string
			expected    error
		}{
			{"Zero user ID", 0, "100.00", "credit", "desc", errs.ErrInvalidUserID},
			{"Unknown type", 1, "100.00", "transfer", "desc", errs.ErrInvalidTransactionType},
			{"Empty description", 1, "100.00", "credit", "   ", errs.ErrEmptyDescription},
			{"Zero amount", 1, "0.00", "credit", "desc", errs.ErrInvalidAmount},
			{"Negative amount", 1, "-5.00", "debit", "desc", errs.ErrNegativeAmount},
			{"Malformed amount", 1, "abc", "credit", "desc", errs.ErrInvalidAmount},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newWalletFixture(t)

				result, err := f.useCase.ApplyTransaction(ctx, tt.userID, tt.amount, tt.txnType, tt.description)

				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, result)
				f.ledgerRepo.AssertNotCalled(t, "Apply")
			})
		}
	})

	t.Run("Insufficient balance surfaces the detailed error", func(t *testing.T) {
		f := newWalletFixture(t)
		balanceErr := errs.NewInsufficientBalanceError(1, "699.00", "150.00")

		f.ledgerRepo.EXPECT().
			Apply(ctx, mock.Anything).
			Return(nil, balanceErr).
			Once()

		result, err := f.useCase.ApplyTransaction(ctx, 1, "699.00", "debit", "Wealth Report generation")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, result)
	})

	t.Run("Duplicate reference is passed through", func(t *testing.T) {
		f := newWalletFixture(t)

		f.ledgerRepo.EXPECT().
			Apply(ctx, mock.Anything).
			Return(nil, errs.ErrDuplicateTransaction).
			Once()

		_, err := f.useCase.ApplyTransaction(ctx, 1, "50.00", "credit", "Refund")

		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("Repository failure is passed through", func(t *testing.T) {
		f := newWalletFixture(t)

		f.ledgerRepo.EXPECT().
			Apply(ctx, mock.Anything).
			Return(nil, errs.ErrDatabaseConnection).
			Once()

		_, err := f.useCase.ApplyTransaction(ctx, 1, "50.00", "credit", "Top-up")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
