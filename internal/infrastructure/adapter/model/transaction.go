package model

import (
	"time"
)

// Transaction represents the database model for wallet transactions
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Reference     string    `gorm:"uniqueIndex;not null;size:64"`
	UserID        uint64    `gorm:"not null;index"`
	Type          string    `gorm:"not null;size:20"`
	Amount        string    `gorm:"not null;size:50"`
	AmountInPaise int64     `gorm:"not null"`
	Status        string    `gorm:"not null;size:20"`
	Description   string    `gorm:"not null;type:text"`
	ResultBalance string    `gorm:"size:50"`
	Timestamp     time.Time `gorm:"not null;index"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
