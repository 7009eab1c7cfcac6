package dto

import (
	"time"

	"github.com/astrodash/astro-api/internal/domain/entity"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
)

// GenerateReportRequest represents the API request for running the report
// generation pipeline
type GenerateReportRequest struct {
	UserID     uint64 `json:"userId" binding:"required"`
	ReportType string `json:"reportType" binding:"required"`
}

// CreateHistoryRequest represents the manual history-entry creation request
type CreateHistoryRequest struct {
	UserID     uint64         `json:"userId" binding:"required"`
	ReportType string         `json:"reportType" binding:"required"`
	ReportName string         `json:"reportName"`
	Amount     string         `json:"amount" binding:"required"`
	Status     string         `json:"status"`
	PDFURL     string         `json:"pdfUrl"`
	Error      string         `json:"error"`
	Metadata   map[string]any `json:"metadata"`
}

// ReportUserResponse is the user identity attached to history listings
type ReportUserResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// HistoryEntryResponse represents one report generation attempt
type HistoryEntryResponse struct {
	ID          uint64              `json:"id"`
	UserID      uint64              `json:"userId"`
	ReportType  string              `json:"reportType"`
	ReportName  string              `json:"reportName"`
	Amount      string              `json:"amount"`
	Status      string              `json:"status"`
	GeneratedAt time.Time           `json:"generatedAt"`
	PDFURL      string              `json:"pdfUrl,omitempty"`
	Error       string              `json:"error,omitempty"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
	User        *ReportUserResponse `json:"user,omitempty"`
}

// ProductResponse represents one catalog product
type ProductResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// NewHistoryEntryResponse maps a history entity to its API representation
func NewHistoryEntryResponse(report *entity.ReportHistory) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:          report.ID,
		UserID:      report.UserID,
		ReportType:  report.ReportType,
		ReportName:  report.ReportName,
		Amount:      report.Amount,
		Status:      string(report.Status),
		GeneratedAt: report.GeneratedAt,
		PDFURL:      report.PDFURL,
		Error:       report.Error,
		Metadata:    report.Metadata,
	}
}

// NewHistoryListResponse maps joined history entries to their API
// representation
func NewHistoryListResponse(entries []persistence.ReportHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := NewHistoryEntryResponse(e.Report)
		resp.User = &ReportUserResponse{
			ID:          e.User.ID,
			Name:        e.User.Name,
			Email:       e.User.Email,
			PhoneNumber: e.User.PhoneNumber,
		}
		out = append(out, resp)
	}
	return out
}
