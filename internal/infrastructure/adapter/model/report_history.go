package model

import (
	"time"

	"gorm.io/datatypes"
)

// ReportHistory represents the database model for report generation attempts
type ReportHistory struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	UserID      uint64         `gorm:"not null;index"`
	ReportType  string         `gorm:"not null;size:100"`
	ReportName  string         `gorm:"not null;size:100"`
	Amount      string         `gorm:"not null;size:50"`
	AmountPaise int64          `gorm:"not null"`
	Status      string         `gorm:"not null;size:20;index"`
	GeneratedAt time.Time      `gorm:"not null;index"`
	PDFURL      string         `gorm:"size:512"`
	Error       string         `gorm:"type:text"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for ReportHistory
func (ReportHistory) TableName() string {
	return "report_histories"
}
