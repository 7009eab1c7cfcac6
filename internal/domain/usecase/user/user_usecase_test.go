package user

import (
	"context"
	"testing"
	"time"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
	coremocks "github.com/astrodash/astro-api/mocks/port/core"
	persistencemocks "github.com/astrodash/astro-api/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type userFixture struct {
	useCase  *UseCase
	userRepo *persistencemocks.MockUserRepository
}

func newUserFixture(t *testing.T) *userFixture {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	userRepo := persistencemocks.NewMockUserRepository(t)

	return &userFixture{
		useCase:  NewUseCase(userRepo, mockTime, mockLogger),
		userRepo: userRepo,
	}
}

func existingUser(t *testing.T, id uint64) *entity.User {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	user, err := entity.NewUser(id, "Ananya Sharma", "ananya@example.com", "500.00", mockTime)
	require.NoError(t, err)
	return user
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Trims and lowercases identity fields", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Name == "Ananya Sharma" &&
					u.Email == "ananya.sharma@example.com" &&
					u.Package == entity.PackageBasic &&
					u.Status == entity.StatusActive
			})).
			Return(nil).
			Once()

		user, err := f.useCase.Create(ctx, CreateInput{
			Name:  "  Ananya Sharma  ",
			Email: " Ananya.Sharma@Example.COM ",
		})

		require.NoError(t, err)
		assert.Equal(t, "ananya.sharma@example.com", user.Email)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Initial balance and birth details are applied", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Balance() == 100000 &&
					u.Package == entity.PackagePremium &&
					u.Birth.DateOfBirth == "1992-04-17" &&
					u.Birth.Latitude == 19.0760
			})).
			Return(nil).
			Once()

		user, err := f.useCase.Create(ctx, CreateInput{
			Name:        "Ananya Sharma",
			Email:       "ananya@example.com",
			Package:     "Premium",
			City:        "Mumbai",
			DateOfBirth: "1992-04-17",
			TimeOfBirth: "06:45",
			BirthPlace:  "Mumbai",
			Latitude:    19.0760,
			Longitude:   72.8777,
			Balance:     "1000.00",
		})

		require.NoError(t, err)
		assert.Equal(t, "1000.00", user.FormattedBalance())
	})

	t.Run("Invalid inputs never reach the repository", func(t *testing.T) {
		tests := []struct {
			name     string
			input    CreateInput
			expected error
		}{
			{"Empty name", CreateInput{Email: "a@example.com"}, errs.ErrInvalidRequest},
			{"Blank email", CreateInput{Name: "A", Email: "   "}, errs.ErrInvalidRequest},
			{"Unknown package", CreateInput{Name: "A", Email: "a@example.com", Package: "Gold"}, errs.ErrInvalidRequest},
			{"Malformed balance", CreateInput{Name: "A", Email: "a@example.com", Balance: "lots"}, errs.ErrInvalidAmount},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newUserFixture(t)

				user, err := f.useCase.Create(ctx, tt.input)

				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, user)
				f.userRepo.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("Duplicate email surfaces from the repository", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		_, err := f.useCase.Create(ctx, CreateInput{Name: "A", Email: "a@example.com"})

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestGetByIDAndExists(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID", func(t *testing.T) {
		f := newUserFixture(t)
		user := existingUser(t, 1)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()

		got, err := f.useCase.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("GetByID rejects zero ID", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase.GetByID(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		f.userRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Exists true", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existingUser(t, 1), nil).Once()

		exists, err := f.useCase.Exists(ctx, 1)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Exists false for unknown user", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		exists, err := f.useCase.Exists(ctx, 99)

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Exists passes through other errors", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.useCase.Exists(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults page and limit", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().
			List(ctx, persistence.UserListFilter{Page: 1, Limit: 20}).
			Return([]*entity.User{existingUser(t, 1)}, int64(1), nil).
			Once()

		users, total, err := f.useCase.List(ctx, persistence.UserListFilter{})

		require.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("Forwards search and status filters", func(t *testing.T) {
		f := newUserFixture(t)
		filter := persistence.UserListFilter{Search: "ananya", Status: "Active", Page: 2, Limit: 50}

		f.userRepo.EXPECT().List(ctx, filter).Return(nil, int64(0), nil).Once()

		_, _, err := f.useCase.List(ctx, filter)
		require.NoError(t, err)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies edits and stamps UpdatedAt", func(t *testing.T) {
		f := newUserFixture(t)
		user := existingUser(t, 1)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Name == "Ananya S" &&
					u.City == "Pune" &&
					u.Package == entity.PackagePremium &&
					u.UpdatedAt.Equal(fixedTime)
			})).
			Return(nil).
			Once()

		updated, err := f.useCase.Update(ctx, 1, CreateInput{
			Name:    "Ananya S",
			Email:   "ananya@example.com",
			Package: "Premium",
			City:    "Pune",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ananya S", updated.Name)
	})

	t.Run("Balance is untouched by updates", func(t *testing.T) {
		f := newUserFixture(t)
		user := existingUser(t, 1)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.userRepo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

		updated, err := f.useCase.Update(ctx, 1, CreateInput{
			Name:    "Ananya S",
			Email:   "ananya@example.com",
			Balance: "9999.00",
		})

		require.NoError(t, err)
		assert.Equal(t, "500.00", updated.FormattedBalance())
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.useCase.Update(ctx, 99, CreateInput{Name: "A", Email: "a@example.com"})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		f.userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase.Update(ctx, 1, CreateInput{Name: "", Email: "a@example.com"})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.userRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Blocks a user", func(t *testing.T) {
		f := newUserFixture(t)
		user := existingUser(t, 1)

		f.userRepo.EXPECT().GetByID(ctx, uint64(1)).Return(user, nil).Once()
		f.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Status == entity.StatusBlocked
			})).
			Return(nil).
			Once()

		updated, err := f.useCase.SetStatus(ctx, 1, "Blocked")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusBlocked, updated.Status)
		assert.False(t, updated.IsActive())
	})

	t.Run("Invalid status value", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase.SetStatus(ctx, 1, "suspended")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		f.userRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete succeeds", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().Delete(ctx, uint64(1)).Return(nil).Once()

		assert.NoError(t, f.useCase.Delete(ctx, 1))
	})

	t.Run("Referenced user cannot be deleted", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().Delete(ctx, uint64(1)).Return(errs.ErrUserHasReferences).Once()

		assert.ErrorIs(t, f.useCase.Delete(ctx, 1), errs.ErrUserHasReferences)
	})

	t.Run("Zero ID is rejected", func(t *testing.T) {
		f := newUserFixture(t)

		assert.ErrorIs(t, f.useCase.Delete(ctx, 0), errs.ErrInvalidUserID)
		f.userRepo.AssertNotCalled(t, "Delete")
	})
}
