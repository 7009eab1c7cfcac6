package wallet

import (
	"context"

	errs "github.com/astrodash/astro-api/internal/domain/error"
)

// BalanceView is the wallet read model. A wallet "exists" iff the user row
// exists; unknown users degrade to a zero balance rather than an error.
type BalanceView struct {
	UserID           uint64 `json:"userId"`
	Balance          string `json:"balance"`
	TransactionCount int64  `json:"transactionCount"`
	Exists           bool   `json:"exists"`
}

// GetBalance retrieves the user's wallet balance and transaction count.
// It is a pure read: calling it twice with no intervening writes returns
// identical results.
func (u *UseCase) GetBalance(ctx context.Context, userID uint64) (*BalanceView, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return &BalanceView{UserID: userID, Balance: "0.00", Exists: false}, nil
		}
		u.logger.Error("Failed to get user for balance lookup", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	count, err := u.ledgerRepo.CountByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to count transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &BalanceView{
		UserID:           user.ID,
		Balance:          user.FormattedBalance(),
		TransactionCount: count,
		Exists:           true,
	}, nil
}
