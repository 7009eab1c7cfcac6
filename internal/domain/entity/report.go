package entity

import (
	"time"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
)

// ReportStatus is the lifecycle status of a report generation attempt
type ReportStatus string

// Report statuses. Generating is the only non-terminal state; completed and
// failed are terminal and never re-entered.
const (
	ReportGenerating ReportStatus = "generating"
	ReportCompleted  ReportStatus = "completed"
	ReportFailed     ReportStatus = "failed"
)

// IsTerminal reports whether the status can no longer change
func (s ReportStatus) IsTerminal() bool {
	return s == ReportCompleted || s == ReportFailed
}

// ReportHistory tracks one report generation attempt end to end. A row is
// created in the generating state before the expensive pipeline stages run,
// then updated once to a terminal state, so a crash mid-pipeline is
// observable as a stuck generating record.
type ReportHistory struct {
	ID          uint64
	UserID      uint64
	ReportType  string
	ReportName  string
	Amount      string // price charged, formatted with 2 decimal places
	AmountPaise int64
	Status      ReportStatus
	GeneratedAt time.Time
	PDFURL      string
	Error       string
	Metadata    map[string]any
}

// NewReportHistory creates an attempt record in the generating state
func NewReportHistory(userID uint64, reportType, reportName string, pricePaise int64, timeProvider coreport.TimeProvider) (*ReportHistory, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return &ReportHistory{
		UserID:      userID,
		ReportType:  reportType,
		ReportName:  reportName,
		Amount:      FormatPaise(pricePaise),
		AmountPaise: pricePaise,
		Status:      ReportGenerating,
		GeneratedAt: timeProvider.Now(),
	}, nil
}

// Complete transitions the attempt to the completed terminal state
func (r *ReportHistory) Complete(pdfURL string, metadata map[string]any) error {
	if r.Status.IsTerminal() {
		return errs.ErrReportAlreadyFinal
	}
	r.Status = ReportCompleted
	r.PDFURL = pdfURL
	r.Metadata = metadata
	return nil
}

// Fail transitions the attempt to the failed terminal state with the
// underlying error message preserved
func (r *ReportHistory) Fail(errMsg string, metadata map[string]any) error {
	if r.Status.IsTerminal() {
		return errs.ErrReportAlreadyFinal
	}
	r.Status = ReportFailed
	r.Error = errMsg
	r.Metadata = metadata
	return nil
}

// ReportUser is the minimal user identity joined onto history listings
type ReportUser struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
