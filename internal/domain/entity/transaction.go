package entity

import (
	"strings"
	"time"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
)

// TransactionType is the signed effect of a transaction on the wallet balance
type TransactionType string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// Transaction statuses. The primary ledger operation only ever produces
// completed rows; pending and failed are reserved for compensating flows.
const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger entry. Corrections happen via
// compensating transactions, never by mutating an existing row.
type Transaction struct {
	ID            uint64
	Reference     string // unique external reference (uuid)
	UserID        uint64
	Type          TransactionType
	Amount        string // formatted with 2 decimal places
	AmountInPaise int64
	Status        TransactionStatus
	Description   string
	ResultBalance string // balance after this transaction was applied
	Timestamp     time.Time
}

// NewTransaction creates a new ledger entry with basic validation
func NewTransaction(
	userID uint64,
	reference string,
	txnType string,
	amount string,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !IsValidTransactionType(txnType) {
		return nil, errs.ErrInvalidTransactionType
	}
	if strings.TrimSpace(description) == "" {
		return nil, errs.ErrEmptyDescription
	}

	paise, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		Reference:     reference,
		UserID:        userID,
		Type:          TransactionType(txnType),
		Amount:        FormatPaise(paise),
		AmountInPaise: paise,
		Status:        StatusCompleted,
		Description:   description,
		Timestamp:     timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this transaction increases the wallet balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// IsDebit returns true if this transaction decreases the wallet balance
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// BalanceChange returns the signed effect in paise
func (t *Transaction) BalanceChange() int64 {
	if t.IsDebit() {
		return -t.AmountInPaise
	}
	return t.AmountInPaise
}

// IsValidTransactionType validates a transaction type value
func IsValidTransactionType(t string) bool {
	return t == string(TypeCredit) || t == string(TypeDebit)
}

// IsValidTransactionStatus validates a transaction status value
func IsValidTransactionStatus(s string) bool {
	return s == string(StatusCompleted) || s == string(StatusPending) || s == string(StatusFailed)
}
