package user

import (
	"context"
	"testing"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid inputs never reach the repository", func(t *testing.T) {
		tests := []struct {
			name     string
			input    BulkInput
			expected error
		}{
			{"Empty selection", BulkInput{Operation: BulkActivate}, errs.ErrInvalidRequest},
			{"Zero user ID", BulkInput{Operation: BulkActivate, UserIDs: []uint64{1, 0}}, errs.ErrInvalidUserID},
			{"Unknown operation", BulkInput{Operation: "promote", UserIDs: []uint64{1}}, errs.ErrInvalidRequest},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				f := newUserFixture(t)

				result, err := f.useCase.Bulk(ctx, tc.input)

				assert.ErrorIs(t, err, tc.expected)
				assert.Nil(t, result)
				f.userRepo.AssertNotCalled(t, "GetByID")
				f.userRepo.AssertNotCalled(t, "Delete")
			})
		}
	})

	t.Run("Activate counts only users that change", func(t *testing.T) {
		f := newUserFixture(t)

		inactive := existingUser(t, 1)
		inactive.Status = entity.StatusInactive
		active := existingUser(t, 2)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(inactive, nil).Once()
		f.userRepo.EXPECT().GetByID(ctx, uint64(2)).Return(active, nil).Once()
		f.userRepo.EXPECT().Update(ctx, inactive).Return(nil).Once()

		result, err := f.useCase.Bulk(ctx, BulkInput{
			Operation: BulkActivate,
			UserIDs:   []uint64{1, 2},
		})

		require.NoError(t, err)
		assert.Equal(t, BulkActivate, result.Operation)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, entity.StatusActive, inactive.Status)
		assert.Equal(t, fixedTime, inactive.UpdatedAt)
	})

	t.Run("Block and deactivate set the target status", func(t *testing.T) {
		tests := []struct {
			operation string
			expected  entity.UserStatus
		}{
			{BulkBlock, entity.StatusBlocked},
			{BulkDeactivate, entity.StatusInactive},
		}

		for _, tc := range tests {
			t.Run(tc.operation, func(t *testing.T) {
				f := newUserFixture(t)

				target := existingUser(t, 7)
				f.userRepo.EXPECT().GetByID(ctx, uint64(7)).Return(target, nil).Once()
				f.userRepo.EXPECT().Update(ctx, target).Return(nil).Once()

				result, err := f.useCase.Bulk(ctx, BulkInput{
					Operation: tc.operation,
					UserIDs:   []uint64{7},
				})

				require.NoError(t, err)
				assert.Equal(t, 1, result.Count)
				assert.Equal(t, tc.expected, target.Status)
			})
		}
	})

	t.Run("Upgrade and downgrade move between package tiers", func(t *testing.T) {
		f := newUserFixture(t)

		basic := existingUser(t, 3)
		premium := existingUser(t, 4)
		premium.Package = entity.PackagePremium

		f.userRepo.EXPECT().GetByID(ctx, uint64(3)).Return(basic, nil).Once()
		f.userRepo.EXPECT().GetByID(ctx, uint64(4)).Return(premium, nil).Once()
		f.userRepo.EXPECT().Update(ctx, basic).Return(nil).Once()

		result, err := f.useCase.Bulk(ctx, BulkInput{
			Operation: BulkUpgrade,
			UserIDs:   []uint64{3, 4},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, entity.PackagePremium, basic.Package)
	})

	t.Run("Unknown users are skipped", func(t *testing.T) {
		f := newUserFixture(t)

		target := existingUser(t, 5)
		target.Status = entity.StatusInactive

		f.userRepo.EXPECT().GetByID(ctx, uint64(5)).Return(target, nil).Once()
		f.userRepo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()
		f.userRepo.EXPECT().Update(ctx, target).Return(nil).Once()

		result, err := f.useCase.Bulk(ctx, BulkInput{
			Operation: BulkActivate,
			UserIDs:   []uint64{5, 99},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Delete skips referenced and missing users", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().Delete(ctx, uint64(1)).Return(nil).Once()
		f.userRepo.EXPECT().Delete(ctx, uint64(2)).Return(errs.ErrUserHasReferences).Once()
		f.userRepo.EXPECT().Delete(ctx, uint64(3)).Return(errs.ErrUserNotFound).Once()

		result, err := f.useCase.Bulk(ctx, BulkInput{
			Operation: BulkDelete,
			UserIDs:   []uint64{1, 2, 3},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Repository failure aborts the batch", func(t *testing.T) {
		f := newUserFixture(t)

		target := existingUser(t, 6)
		target.Status = entity.StatusInactive

		f.userRepo.EXPECT().GetByID(ctx, uint64(6)).Return(target, nil).Once()
		f.userRepo.EXPECT().Update(ctx, target).Return(errs.ErrDatabaseConnection).Once()

		result, err := f.useCase.Bulk(ctx, BulkInput{
			Operation: BulkActivate,
			UserIDs:   []uint64{6, 7},
		})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, result)
	})
}
