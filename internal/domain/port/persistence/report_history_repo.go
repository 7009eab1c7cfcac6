package persistence

import (
	"context"

	"github.com/astrodash/astro-api/internal/domain/entity"
)

// ReportHistoryEntry is a history row joined with minimal user identity
// for display listings
type ReportHistoryEntry struct {
	Report *entity.ReportHistory
	User   entity.ReportUser
}

// ReportHistoryRepository persists report generation attempts
type ReportHistoryRepository interface {
	// Create inserts a new attempt row and sets its ID
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, report *entity.ReportHistory) error

	// GetByID retrieves an attempt by ID
	//
	// Possible errors:
	// - ErrReportNotFound: If no such attempt exists
	GetByID(ctx context.Context, id uint64) (*entity.ReportHistory, error)

	// UpdateStatus writes the terminal outcome of an attempt in place.
	// Rows already in a terminal status are left untouched.
	//
	// Possible errors:
	// - ErrReportNotFound: If no such attempt exists
	// - ErrReportAlreadyFinal: If the row already reached a terminal status
	UpdateStatus(ctx context.Context, report *entity.ReportHistory) error

	// ListAll retrieves every attempt newest first, joined with user identity
	ListAll(ctx context.Context) ([]ReportHistoryEntry, error)

	// Count returns the total number of recorded attempts
	Count(ctx context.Context) (int64, error)
}
