package entity

import (
	"time"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
)

// PackageTier is the subscription package a user is on
type PackageTier string

// Package tiers
const (
	PackageBasic   PackageTier = "Basic"
	PackagePremium PackageTier = "Premium"
)

// UserStatus is the account status of a user
type UserStatus string

// User statuses
const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
	StatusBlocked  UserStatus = "Blocked"
)

// BirthDetails holds the birth parameters used as report-generation input
type BirthDetails struct {
	DateOfBirth string  // YYYY-MM-DD
	TimeOfBirth string  // HH:MM
	BirthPlace  string
	Latitude    float64
	Longitude   float64
}

// User represents a dashboard user with a wallet balance and birth attributes
type User struct {
	ID               uint64
	Name             string
	Email            string
	PhoneNumber      string
	CountryCode      string
	Package          PackageTier
	Status           UserStatus
	City             string
	Country          string
	Birth            BirthDetails
	balance          int64 // wallet balance in paise, private to force going through balance ops
	TransactionCount uint64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUser creates a new user with the given identity and an initial wallet balance
func NewUser(id uint64, name, email string, initialBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	var balance int64
	if initialBalance != "" && initialBalance != "0" && initialBalance != "0.00" {
		var err error
		balance, err = ParseAmount(initialBalance)
		if err != nil {
			return nil, err
		}
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Package:   PackageBasic,
		Status:    StatusActive,
		balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current wallet balance in paise
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the wallet balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatPaise(u.balance)
}

// SetBalance updates the balance directly (for repositories hydrating entities)
func (u *User) SetBalance(paise int64, timeProvider coreport.TimeProvider) {
	u.balance = paise
	u.UpdatedAt = timeProvider.Now()
}

// CanAfford checks whether the wallet covers the given amount in paise
func (u *User) CanAfford(paise int64) bool {
	return u.balance >= paise
}

// Credit adds the amount to the wallet balance
func (u *User) Credit(paise int64, timeProvider coreport.TimeProvider) {
	u.balance += paise
	u.UpdatedAt = timeProvider.Now()
	u.TransactionCount++
}

// Debit subtracts the amount from the wallet balance.
// Returns ErrInsufficientBalance if the balance would go negative.
func (u *User) Debit(paise int64, timeProvider coreport.TimeProvider) error {
	if u.balance < paise {
		return errs.ErrInsufficientBalance
	}
	u.balance -= paise
	u.UpdatedAt = timeProvider.Now()
	u.TransactionCount++
	return nil
}

// IsActive reports whether the user may perform gated operations
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsValidPackage validates a package tier value
func IsValidPackage(p string) bool {
	return p == string(PackageBasic) || p == string(PackagePremium)
}

// IsValidStatus validates a user status value
func IsValidStatus(s string) bool {
	return s == string(StatusActive) || s == string(StatusInactive) || s == string(StatusBlocked)
}
