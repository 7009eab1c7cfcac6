package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
)

// ApplyResult is the outcome of a successfully applied ledger transaction
type ApplyResult struct {
	Transaction *entity.Transaction
	NewBalance  string
}

// ApplyTransaction validates and applies a credit or debit to the user's
// wallet. The balance update and the transaction insert are one atomic
// unit; a debit exceeding the balance leaves both untouched.
func (u *UseCase) ApplyTransaction(
	ctx context.Context,
	userID uint64,
	amount string,
	txnType string,
	description string,
) (*ApplyResult, error) {
	txn, err := entity.NewTransaction(userID, uuid.NewString(), txnType, amount, description, u.timeProvider)
	if err != nil {
		u.logger.Warn("Rejected invalid wallet transaction", map[string]any{
			"user_id": userID,
			"type":    txnType,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	user, err := u.ledgerRepo.Apply(ctx, txn)
	if err != nil {
		if errs.IsInsufficientBalanceError(err) {
			u.logger.Warn("Debit rejected for insufficient balance", map[string]any{
				"user_id": userID,
				"amount":  txn.Amount,
			})
		} else {
			u.logger.Error("Failed to apply wallet transaction", map[string]any{
				"user_id":   userID,
				"reference": txn.Reference,
				"error":     err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("Wallet transaction applied", map[string]any{
		"user_id":     userID,
		"reference":   txn.Reference,
		"type":        string(txn.Type),
		"amount":      txn.Amount,
		"new_balance": user.FormattedBalance(),
	})

	return &ApplyResult{
		Transaction: txn,
		NewBalance:  user.FormattedBalance(),
	}, nil
}
