package dashboard

import (
	"context"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
)

// StatsView is the dashboard header read model: total row counts across
// the three main tables.
type StatsView struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalReports      int64 `json:"totalReport"`
	TotalTransactions int64 `json:"totalTransactions"`
}

// UseCase aggregates the counts the admin dashboard shows on its landing
// page.
type UseCase struct {
	userRepo   persistence.UserRepository
	ledgerRepo persistence.LedgerRepository
	reportRepo persistence.ReportHistoryRepository
	logger     coreport.Logger
}

// NewUseCase creates a new dashboard use case instance
func NewUseCase(
	userRepo persistence.UserRepository,
	ledgerRepo persistence.LedgerRepository,
	reportRepo persistence.ReportHistoryRepository,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Stats returns the current totals. A pure read; the three counts are not
// taken in one snapshot, which is fine for a dashboard header.
func (u *UseCase) Stats(ctx context.Context) (*StatsView, error) {
	users, err := u.userRepo.Count(ctx)
	if err != nil {
		u.logger.Error("Failed to count users", map[string]any{"error": err.Error()})
		return nil, err
	}

	reports, err := u.reportRepo.Count(ctx)
	if err != nil {
		u.logger.Error("Failed to count report history", map[string]any{"error": err.Error()})
		return nil, err
	}

	transactions, err := u.ledgerRepo.Count(ctx)
	if err != nil {
		u.logger.Error("Failed to count transactions", map[string]any{"error": err.Error()})
		return nil, err
	}

	return &StatsView{
		TotalUsers:        users,
		TotalReports:      reports,
		TotalTransactions: transactions,
	}, nil
}
