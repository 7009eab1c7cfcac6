package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"not null;size:255"`
	Email            string `gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber      string `gorm:"size:20"`
	CountryCode      string `gorm:"size:8"`
	Package          string `gorm:"not null;size:20;default:'Basic'"`
	Status           string `gorm:"not null;size:20;default:'Active'"`
	City             string `gorm:"size:120"`
	Country          string `gorm:"size:120"`
	DateOfBirth      string `gorm:"size:10"`
	TimeOfBirth      string `gorm:"size:8"`
	BirthPlace       string `gorm:"size:255"`
	Latitude         float64
	Longitude        float64
	WalletBalance    int64     `gorm:"not null;default:0"` // balance in paise
	TransactionCount uint64    `gorm:"default:0"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
