package report

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

type historyFixture struct {
	useCase     *HistoryUseCase
	historyRepo *persistencemocks.MockReportHistoryRepository
}

func newHistoryFixture(t *testing.T) *historyFixture {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	historyRepo := persistencemocks.NewMockReportHistoryRepository(t)

	return &historyFixture{
		useCase:     NewHistoryUseCase(historyRepo, mockTime, mockLogger),
		historyRepo: historyRepo,
	}
}

func TestCreateEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("Minimal entry defaults to completed", func(t *testing.T) {
		f := newHistoryFixture(t)

		f.historyRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(h *entity.ReportHistory) bool {
				return h.UserID == 1 &&
					h.ReportType == "Wealth Report" &&
					h.ReportName == "Wealth Report" &&
					h.Amount == "699.00" &&
					h.Status == entity.ReportCompleted
			})).
			Return(nil).
			Once()

		entry, err := f.useCase.CreateEntry(ctx, CreateEntryInput{
			UserID:     1,
			ReportType: "Wealth Report",
			Amount:     "699.00",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.ReportCompleted, entry.Status)
		assert.Equal(t, "Wealth Report", entry.ReportName)
	})

	t.Run("Explicit status and fields are preserved", func(t *testing.T) {
		f := newHistoryFixture(t)
		metadata := map[string]any{"source": "backfill"}

		f.historyRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(h *entity.ReportHistory) bool {
				return h.Status == entity.ReportFailed &&
					h.ReportName == "Custom Name" &&
					h.Error == "render crashed" &&
					h.PDFURL == ""
			})).
			Return(nil).
			Once()

		entry, err := f.useCase.CreateEntry(ctx, CreateEntryInput{
			UserID:     1,
			ReportType: "Wealth Report",
			ReportName: "Custom Name",
			Amount:     "699.00",
			Status:     "failed",
			Error:      "render crashed",
			Metadata:   metadata,
		})

		require.NoError(t, err)
		assert.Equal(t, metadata, entry.Metadata)
	})

	t.Run("Validation failures never reach the repository", func(t *testing.T) {
		tests := []struct {
			name     string
			input    CreateEntryInput
			expected error
		}{
			{"Zero user ID", CreateEntryInput{ReportType: "Wealth Report", Amount: "699.00"}, errs.ErrInvalidUserID},
			{"Missing report type", CreateEntryInput{UserID: 1, Amount: "699.00"}, errs.ErrInvalidRequest},
			{"Missing amount", CreateEntryInput{UserID: 1, ReportType: "Wealth Report"}, errs.ErrInvalidRequest},
			{"Malformed amount", CreateEntryInput{UserID: 1, ReportType: "Wealth Report", Amount: "abc"}, errs.ErrInvalidAmount},
			{"Unknown status", CreateEntryInput{UserID: 1, ReportType: "Wealth Report", Amount: "699.00", Status: "done"}, errs.ErrInvalidRequest},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newHistoryFixture(t)

				entry, err := f.useCase.CreateEntry(ctx, tt.input)

				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, entry)
				f.historyRepo.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("Unknown user surfaces from the repository", func(t *testing.T) {
		f := newHistoryFixture(t)

		f.historyRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrUserNotFound).Once()

		_, err := f.useCase.CreateEntry(ctx, CreateEntryInput{
			UserID:     99,
			ReportType: "Wealth Report",
			Amount:     "699.00",
		})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns entries with user identity", func(t *testing.T) {
		f := newHistoryFixture(t)
		entries := []persistence.ReportHistoryEntry{
			{
				Report: &entity.ReportHistory{ID: 2, UserID: 1, ReportType: "Wealth Report", Status: entity.ReportCompleted},
				User:   entity.ReportUser{ID: 1, Name: "Ananya Sharma", Email: "ananya@example.com"},
			},
			{
				Report: &entity.ReportHistory{ID: 1, UserID: 2, ReportType: "Fortune Report", Status: entity.ReportFailed},
				User:   entity.ReportUser{ID: 2, Name: "Rohan Verma", Email: "rohan@example.com"},
			},
		}

		f.historyRepo.EXPECT().ListAll(ctx).Return(entries, nil).Once()

		got, err := f.useCase.ListEntries(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Ananya Sharma", got[0].User.Name)
		assert.Equal(t, entity.ReportFailed, got[1].Report.Status)
	})

	t.Run("Empty history", func(t *testing.T) {
		f := newHistoryFixture(t)

		f.historyRepo.EXPECT().ListAll(ctx).Return([]persistence.ReportHistoryEntry{}, nil).Once()

		got, err := f.useCase.ListEntries(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Repository failure is passed through", func(t *testing.T) {
		f := newHistoryFixture(t)

		f.historyRepo.EXPECT().ListAll(ctx).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.useCase.ListEntries(ctx)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
