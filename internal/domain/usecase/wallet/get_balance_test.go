package wallet

import (
	"context"
	"testing"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		f := newWalletFixture(t)
		user := testUser(t, 1, "1000.00")
		user.TransactionCount = 4

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.ledgerRepo.EXPECT().CountByUser(ctx, uint64(1)).Return(int64(4), nil).Once()

		view, err := f.useCase.GetBalance(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), view.UserID)
		assert.Equal(t, "1000.00", view.Balance)
		assert.Equal(t, int64(4), view.TransactionCount)
		assert.True(t, view.Exists)
	})

	t.Run("Unknown user degrades to a zero balance", func(t *testing.T) {
		f := newWalletFixture(t)

		f.userRepo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		view, err := f.useCase.GetBalance(ctx, 99)

		require.NoError(t, err)
		assert.Equal(t, uint64(99), view.UserID)
		assert.Equal(t, "0.00", view.Balance)
		assert.False(t, view.Exists)
		f.ledgerRepo.AssertNotCalled(t, "CountByUser")
	})

	t.Run("Zero user ID is rejected", func(t *testing.T) {
		f := newWalletFixture(t)

		view, err := f.useCase.GetBalance(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, view)
		f.userRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("User lookup failure is passed through", func(t *testing.T) {
		f := newWalletFixture(t)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(nil, errs.ErrDatabaseConnection).Once()

		view, err := f.useCase.GetBalance(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, view)
	})

	t.Run("Transaction count failure is passed through", func(t *testing.T) {
		f := newWalletFixture(t)
		user := testUser(t, 1, "50.00")

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.ledgerRepo.EXPECT().CountByUser(ctx, uint64(1)).Return(int64(0), errs.ErrDatabaseConnection).Once()

		view, err := f.useCase.GetBalance(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, view)
	})
}
