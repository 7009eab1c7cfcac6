package wallet

import (
	"context"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
)

// Default and maximum page sizes for transaction listings
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Pagination describes one page of a listing
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// TransactionPage is one page of a user's transaction history
type TransactionPage struct {
	Items      []*entity.Transaction
	Pagination Pagination
}

// ListTransactions returns the user's transactions newest first with
// page/limit pagination and optional type/status filters.
func (u *UseCase) ListTransactions(
	ctx context.Context,
	userID uint64,
	page, limit int,
	typeFilter, statusFilter string,
) (*TransactionPage, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if typeFilter != "" && !entity.IsValidTransactionType(typeFilter) {
		return nil, errs.ErrInvalidTransactionType
	}
	if statusFilter != "" && !entity.IsValidTransactionStatus(statusFilter) {
		return nil, errs.ErrInvalidRequest
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filter := persistence.TransactionFilter{Type: typeFilter, Status: statusFilter}
	items, total, err := u.ledgerRepo.ListByUser(ctx, userID, filter, page, limit)
	if err != nil {
		u.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"page":    page,
			"limit":   limit,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &TransactionPage{
		Items: items,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// totalPages computes ceil(total/limit)
func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
