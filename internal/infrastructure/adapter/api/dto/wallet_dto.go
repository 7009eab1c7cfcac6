package dto

import (
	"time"

	"github.com/astrodash/astro-api/internal/domain/entity"
	"github.com/astrodash/astro-api/internal/domain/usecase/wallet"
)

// ApplyTransactionRequest represents the API request for applying a wallet
// transaction
type ApplyTransactionRequest struct {
	UserID      uint64 `json:"userId" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=credit debit"`
	Description string `json:"description" binding:"required"`
}

// TransactionResponse represents one ledger entry in API responses
type TransactionResponse struct {
	ID            uint64    `json:"id"`
	Reference     string    `json:"reference"`
	UserID        uint64    `json:"userId"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	Description   string    `json:"description"`
	ResultBalance string    `json:"resultBalance,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// ApplyTransactionResponse represents the API response for an applied
// transaction
type ApplyTransactionResponse struct {
	Success     bool                `json:"success"`
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  string              `json:"newBalance"`
}

// BalanceResponse represents the API response for a user's wallet balance
type BalanceResponse struct {
	UserID           uint64 `json:"userId"`
	Balance          string `json:"balance"`
	TransactionCount int64  `json:"transactionCount"`
	Exists           bool   `json:"exists"`
}

// PaginationResponse describes one page of a listing
type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// TransactionListResponse represents one page of a user's transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// NewTransactionResponse maps a ledger entity to its API representation
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID,
		Reference:     txn.Reference,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Status:        string(txn.Status),
		Description:   txn.Description,
		ResultBalance: txn.ResultBalance,
		Timestamp:     txn.Timestamp,
	}
}

// NewTransactionListResponse maps a usecase page to its API representation
func NewTransactionListResponse(page *wallet.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for _, txn := range page.Items {
		items = append(items, NewTransactionResponse(txn))
	}
	return TransactionListResponse{
		Transactions: items,
		Pagination: PaginationResponse{
			Total:      page.Pagination.Total,
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			TotalPages: page.Pagination.TotalPages,
		},
	}
}
