package persistence

import (
	"context"

	"github.com/astrodash/astro-api/internal/domain/entity"
)

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	Type   string // credit or debit, empty for all
	Status string // completed, pending or failed, empty for all
}

// LedgerRepository owns the atomicity of wallet balance mutation: the
// balance update and the transaction insert happen inside one database
// transaction, so no observer ever sees one without the other.
type LedgerRepository interface {
	// Apply atomically updates the user's balance and appends the
	// transaction row. The balance read, sufficiency check, balance write
	// and insert are serialized against concurrent calls for the same user
	// via a row lock, so two debits that individually pass the check cannot
	// jointly overdraw the balance.
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrInsufficientBalance: If a debit exceeds the balance (no mutation occurs)
	// - ErrDatabaseConnection: If database connection fails
	Apply(ctx context.Context, txn *entity.Transaction) (*entity.User, error)

	// ListByUser retrieves the user's transactions newest first with the
	// total count for pagination
	ListByUser(ctx context.Context, userID uint64, filter TransactionFilter, page, limit int) ([]*entity.Transaction, int64, error)

	// CountByUser returns the number of transactions recorded for the user
	CountByUser(ctx context.Context, userID uint64) (int64, error)

	// Count returns the total number of transactions across all users
	Count(ctx context.Context) (int64, error)
}
