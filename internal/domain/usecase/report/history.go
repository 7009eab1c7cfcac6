package report

import (
	"context"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
)

// HistoryUseCase tracks the lifecycle of report generation attempts
// independent of whether the attempt ultimately succeeds.
type HistoryUseCase struct {
	historyRepo  persistence.ReportHistoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHistoryUseCase creates a new history use case instance
func NewHistoryUseCase(
	historyRepo persistence.ReportHistoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *HistoryUseCase {
	return &HistoryUseCase{
		historyRepo:  historyRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateEntryInput is the manual history-entry creation input used by the
// admin API surface
type CreateEntryInput struct {
	UserID     uint64
	ReportType string
	ReportName string
	Amount     string
	Status     string
	PDFURL     string
	Error      string
	Metadata   map[string]any
}

// CreateEntry inserts a history row directly. Used by the admin surface;
// the orchestrator manages its own rows through the attempt lifecycle.
func (h *HistoryUseCase) CreateEntry(ctx context.Context, in CreateEntryInput) (*entity.ReportHistory, error) {
	if in.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if in.ReportType == "" || in.Amount == "" {
		return nil, errs.ErrInvalidRequest
	}

	paise, err := entity.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	status := entity.ReportStatus(in.Status)
	switch status {
	case "":
		status = entity.ReportCompleted
	case entity.ReportGenerating, entity.ReportCompleted, entity.ReportFailed:
	default:
		return nil, errs.ErrInvalidRequest
	}

	name := in.ReportName
	if name == "" {
		name = in.ReportType
	}

	entry, err := entity.NewReportHistory(in.UserID, in.ReportType, name, paise, h.timeProvider)
	if err != nil {
		return nil, err
	}
	entry.Status = status
	entry.PDFURL = in.PDFURL
	entry.Error = in.Error
	entry.Metadata = in.Metadata

	if err := h.historyRepo.Create(ctx, entry); err != nil {
		h.logger.Error("Failed to create report history entry", map[string]any{
			"user_id":     in.UserID,
			"report_type": in.ReportType,
			"error":       err.Error(),
		})
		return nil, err
	}

	h.logger.Info("Report history entry created", map[string]any{
		"report_id":   entry.ID,
		"user_id":     in.UserID,
		"report_type": in.ReportType,
		"status":      string(status),
	})
	return entry, nil
}

// ListEntries returns all attempts newest first, joined with minimal user
// identity for display
func (h *HistoryUseCase) ListEntries(ctx context.Context) ([]persistence.ReportHistoryEntry, error) {
	entries, err := h.historyRepo.ListAll(ctx)
	if err != nil {
		h.logger.Error("Failed to list report history", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return entries, nil
}
