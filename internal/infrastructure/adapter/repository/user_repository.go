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
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	metrics         *database.MetricsCollector
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		metrics:         database.NewMetricsCollector(logger, timeProvider),
	}
}

// userModelToEntity converts a user model to a domain entity
func userModelToEntity(m *model.User, tp coreport.TimeProvider) *entity.User {
	u := &entity.User{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		CountryCode: m.CountryCode,
		Package:     entity.PackageTier(m.Package),
		Status:      entity.UserStatus(m.Status),
		City:        m.City,
		Country:     m.Country,
		Birth: entity.BirthDetails{
			DateOfBirth: m.DateOfBirth,
			TimeOfBirth: m.TimeOfBirth,
			BirthPlace:  m.BirthPlace,
			Latitude:    m.Latitude,
			Longitude:   m.Longitude,
		},
		TransactionCount: m.TransactionCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	u.SetBalance(m.WalletBalance, tp)
	// SetBalance stamps UpdatedAt; restore the persisted value
	u.UpdatedAt = m.UpdatedAt
	return u
}

// userEntityToModel converts a domain entity to a user model
func userEntityToModel(u *entity.User) model.User {
	return model.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		CountryCode:      u.CountryCode,
		Package:          string(u.Package),
		Status:           string(u.Status),
		City:             u.City,
		Country:          u.Country,
		DateOfBirth:      u.Birth.DateOfBirth,
		TimeOfBirth:      u.Birth.TimeOfBirth,
		BirthPlace:       u.Birth.BirthPlace,
		Latitude:         u.Birth.Latitude,
		Longitude:        u.Birth.Longitude,
		WalletBalance:    u.Balance(),
		TransactionCount: u.TransactionCount,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return userModelToEntity(&userModel, r.timeProvider), nil
}

// Create creates a new user and sets the generated ID on the entity
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"email":   user.Email,
		"package": user.Package,
	})

	userModel := userEntityToModel(user)

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	user.ID = userModel.ID
	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// Update updates user profile information. Wallet balance is intentionally
// excluded, it is only mutated through the ledger.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Updating user", map[string]any{
		"user_id": user.ID,
	})

	userModel := userEntityToModel(user)

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          userModel.Name,
			"email":         userModel.Email,
			"phone_number":  userModel.PhoneNumber,
			"country_code":  userModel.CountryCode,
			"package":       userModel.Package,
			"status":        userModel.Status,
			"city":          userModel.City,
			"country":       userModel.Country,
			"date_of_birth": userModel.DateOfBirth,
			"time_of_birth": userModel.TimeOfBirth,
			"birth_place":   userModel.BirthPlace,
			"latitude":      userModel.Latitude,
			"longitude":     userModel.Longitude,
			"updated_at":    r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Info("User updated successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// List retrieves users matching the filter, newest first, with the total count
func (r *UserRepository) List(ctx context.Context, filter persistence.UserListFilter) ([]*entity.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var models []model.User
	offset := (filter.Page - 1) * filter.Limit
	if _, err := r.metrics.MeasureQuery(ctx, "list_users", func() (int64, error) {
		result := query.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&models)
		return result.RowsAffected, result.Error
	}); err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, userModelToEntity(&models[i], r.timeProvider))
	}
	return users, total, nil
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}

// Delete removes a user unless transactions or report history rows still
// reference it
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txnCount int64
		if err := tx.Model(&model.Transaction{}).Where("user_id = ?", id).Count(&txnCount).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		var reportCount int64
		if err := tx.Model(&model.ReportHistory{}).Where("user_id = ?", id).Count(&reportCount).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if txnCount > 0 || reportCount > 0 {
			r.logger.Warn("Refusing to delete referenced user", map[string]any{
				"user_id":      id,
				"transactions": txnCount,
				"reports":      reportCount,
			})
			return errs.ErrUserHasReferences
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			if r.errorClassifier.IsForeignKeyError(result.Error) {
				return errs.ErrUserHasReferences
			}
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		if result.RowsAffected == 0 {
			return errs.ErrUserNotFound
		}
		return nil
	})

	if err != nil {
		return err
	}

	r.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
