package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportHistoryRepository implements persistence.ReportHistoryRepository using GORM
type ReportHistoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReportHistoryRepository creates a new ReportHistoryRepository instance
func NewReportHistoryRepository(db *gorm.DB, logger coreport.Logger) *ReportHistoryRepository {
	return &ReportHistoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// reportEntityToModel converts a report history entity to a database model
func reportEntityToModel(report *entity.ReportHistory) (model.ReportHistory, error) {
	m := model.ReportHistory{
		ID:          report.ID,
		UserID:      report.UserID,
		ReportType:  report.ReportType,
		ReportName:  report.ReportName,
		Amount:      report.Amount,
		AmountPaise: report.AmountPaise,
		Status:      string(report.Status),
		GeneratedAt: report.GeneratedAt,
		PDFURL:      report.PDFURL,
		Error:       report.Error,
	}
	if report.Metadata != nil {
		raw, err := json.Marshal(report.Metadata)
		if err != nil {
			return model.ReportHistory{}, fmt.Errorf("%w: marshaling report metadata: %s", errs.ErrInternalServer, err.Error())
		}
		m.Metadata = datatypes.JSON(raw)
	}
	return m, nil
}

// reportModelToEntity converts a report history model to an entity
func reportModelToEntity(m *model.ReportHistory) *entity.ReportHistory {
	report := &entity.ReportHistory{
		ID:          m.ID,
		UserID:      m.UserID,
		ReportType:  m.ReportType,
		ReportName:  m.ReportName,
		Amount:      m.Amount,
		AmountPaise: m.AmountPaise,
		Status:      entity.ReportStatus(m.Status),
		GeneratedAt: m.GeneratedAt,
		PDFURL:      m.PDFURL,
		Error:       m.Error,
	}
	if len(m.Metadata) > 0 {
		var metadata map[string]any
		if err := json.Unmarshal(m.Metadata, &metadata); err == nil {
			report.Metadata = metadata
		}
	}
	return report
}

// Create inserts a new attempt row and sets its generated ID on the entity
func (r *ReportHistoryRepository) Create(ctx context.Context, report *entity.ReportHistory) error {
	r.logger.Debug("Creating report history entry", map[string]any{
		"user_id":     report.UserID,
		"report_type": report.ReportType,
		"status":      report.Status,
	})

	reportModel, err := reportEntityToModel(report)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(&reportModel)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			r.logger.Warn("Report history references missing user", map[string]any{
				"user_id": report.UserID,
			})
			return errs.ErrUserNotFound
		}
		r.logger.Error("Failed to create report history entry", map[string]any{
			"user_id":     report.UserID,
			"report_type": report.ReportType,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	report.ID = reportModel.ID
	r.logger.Info("Report history entry created", map[string]any{
		"report_id":   report.ID,
		"user_id":     report.UserID,
		"report_type": report.ReportType,
	})
	return nil
}

// GetByID retrieves an attempt by ID
func (r *ReportHistoryRepository) GetByID(ctx context.Context, id uint64) (*entity.ReportHistory, error) {
	var reportModel model.ReportHistory
	result := r.db.WithContext(ctx).First(&reportModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Report history entry not found", map[string]any{
				"report_id": id,
			})
			return nil, errs.ErrReportNotFound
		}
		r.logger.Error("Failed to get report history entry", map[string]any{
			"report_id": id,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return reportModelToEntity(&reportModel), nil
}

// UpdateStatus writes the terminal outcome of an attempt in place. The
// status predicate in the WHERE clause guarantees terminal rows are never
// overwritten, even under concurrent updates.
func (r *ReportHistoryRepository) UpdateStatus(ctx context.Context, report *entity.ReportHistory) error {
	r.logger.Debug("Updating report history status", map[string]any{
		"report_id": report.ID,
		"status":    report.Status,
	})

	reportModel, err := reportEntityToModel(report)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.ReportHistory{}).
		Where("id = ? AND status = ?", report.ID, string(entity.ReportGenerating)).
		Updates(map[string]any{
			"status":   reportModel.Status,
			"pdf_url":  reportModel.PDFURL,
			"error":    reportModel.Error,
			"metadata": reportModel.Metadata,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update report history status", map[string]any{
			"report_id": report.ID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.ReportHistory{}).
			Where("id = ?", report.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if count == 0 {
			r.logger.Warn("Report history entry not found during update", map[string]any{
				"report_id": report.ID,
			})
			return errs.ErrReportNotFound
		}
		r.logger.Warn("Report history entry already finalized", map[string]any{
			"report_id": report.ID,
		})
		return errs.ErrReportAlreadyFinal
	}

	r.logger.Info("Report history status updated", map[string]any{
		"report_id": report.ID,
		"status":    report.Status,
	})
	return nil
}

// ListAll retrieves every attempt newest first, joined with user identity
func (r *ReportHistoryRepository) ListAll(ctx context.Context) ([]persistence.ReportHistoryEntry, error) {
	var models []model.ReportHistory
	result := r.db.WithContext(ctx).
		Preload("User").
		Order("generated_at DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list report history", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]persistence.ReportHistoryEntry, 0, len(models))
	for i := range models {
		entries = append(entries, persistence.ReportHistoryEntry{
			Report: reportModelToEntity(&models[i]),
			User: entity.ReportUser{
				ID:          models[i].User.ID,
				Name:        models[i].User.Name,
				Email:       models[i].User.Email,
				PhoneNumber: models[i].User.PhoneNumber,
			},
		})
	}
	return entries, nil
}

// Count returns the total number of recorded attempts
func (r *ReportHistoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ReportHistory{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}
