package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/database"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository implements persistence.LedgerRepository using GORM
type LedgerRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// txnEntityToModel converts a transaction entity to a database model
func txnEntityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		Reference:     txn.Reference,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		AmountInPaise: txn.AmountInPaise,
		Status:        string(txn.Status),
		Description:   txn.Description,
		ResultBalance: txn.ResultBalance,
		Timestamp:     txn.Timestamp,
	}
}

// txnModelToEntity converts a transaction model to an entity
func txnModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Reference:     m.Reference,
		UserID:        m.UserID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		AmountInPaise: m.AmountInPaise,
		Status:        entity.TransactionStatus(m.Status),
		Description:   m.Description,
		ResultBalance: m.ResultBalance,
		Timestamp:     m.Timestamp,
	}
}

// Apply atomically mutates the user's balance and appends the ledger row.
// The user row is locked with FOR UPDATE for the duration of the database
// transaction, which serializes concurrent mutations of the same wallet.
func (r *LedgerRepository) Apply(ctx context.Context, txn *entity.Transaction) (*entity.User, error) {
	r.logger.Debug("Applying ledger transaction", map[string]any{
		"reference": txn.Reference,
		"user_id":   txn.UserID,
		"type":      txn.Type,
		"amount":    txn.Amount,
	})

	var user *entity.User

	// Deadlocks and serialization failures are retried with backoff; the
	// unique reference column keeps a retried insert from double-applying.
	err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		return r.apply(ctx, txn, &user)
	}, r.logger)

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errors.Is(err, errs.ErrInsufficientBalance) {
			return nil, err
		}
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate transaction reference", map[string]any{
				"reference": txn.Reference,
				"user_id":   txn.UserID,
			})
			return nil, errs.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Ledger transaction applied", map[string]any{
		"reference":   txn.Reference,
		"user_id":     txn.UserID,
		"type":        txn.Type,
		"amount":      txn.Amount,
		"new_balance": user.FormattedBalance(),
	})

	return user, nil
}

// lockUserRow reads the user row with SELECT ... FOR UPDATE so concurrent
// balance mutations on the same wallet serialize behind the row lock.
func lockUserRow(tx *gorm.DB, id uint64, dest *model.User) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(dest, id)
}

// apply runs one attempt of the balance mutation inside a database transaction.
func (r *LedgerRepository) apply(ctx context.Context, txn *entity.Transaction, user **entity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the user row for the duration of the transaction. The
		// sufficiency check below is only sound while the lock is held.
		var userModel model.User
		result := lockUserRow(tx, txn.UserID, &userModel)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				r.logger.Warn("User not found during ledger apply", map[string]any{
					"user_id":   txn.UserID,
					"reference": txn.Reference,
				})
				return errs.ErrUserNotFound
			}
			r.logger.Error("Database error when locking user", map[string]any{
				"user_id": txn.UserID,
				"error":   result.Error.Error(),
			})
			return result.Error
		}

		newBalance := userModel.WalletBalance + txn.BalanceChange()
		if newBalance < 0 {
			r.logger.Warn("Insufficient balance for debit", map[string]any{
				"user_id":         txn.UserID,
				"current_balance": entity.FormatPaise(userModel.WalletBalance),
				"debit_amount":    txn.Amount,
			})
			return errs.NewInsufficientBalanceError(txn.UserID, txn.Amount, entity.FormatPaise(userModel.WalletBalance))
		}

		userModel.WalletBalance = newBalance
		userModel.TransactionCount++
		userModel.UpdatedAt = r.timeProvider.Now()

		result = tx.Model(&userModel).Updates(map[string]any{
			"wallet_balance":    userModel.WalletBalance,
			"transaction_count": userModel.TransactionCount,
			"updated_at":        userModel.UpdatedAt,
		})
		if result.Error != nil {
			r.logger.Error("Failed to update wallet balance", map[string]any{
				"user_id": txn.UserID,
				"error":   result.Error.Error(),
			})
			return result.Error
		}

		txn.ResultBalance = entity.FormatPaise(newBalance)
		txnModel := txnEntityToModel(txn)
		if err := tx.Create(&txnModel).Error; err != nil {
			r.logger.Error("Failed to insert ledger row", map[string]any{
				"user_id":   txn.UserID,
				"reference": txn.Reference,
				"error":     err.Error(),
			})
			return err
		}
		txn.ID = txnModel.ID

		*user = userModelToEntity(&userModel, r.timeProvider)
		return nil
	})
}

// ListByUser retrieves the user's transactions newest first with the total count
func (r *LedgerRepository) ListByUser(ctx context.Context, userID uint64, filter persistence.TransactionFilter, page, limit int) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("user_id = ?", userID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("Failed to count transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var models []model.Transaction
	offset := (page - 1) * limit
	if err := query.Order("timestamp DESC").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, txnModelToEntity(&models[i]))
	}
	return transactions, total, nil
}

// CountByUser returns the number of transactions recorded for the user
func (r *LedgerRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}

// Count returns the total number of transactions across all users
func (r *LedgerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}
