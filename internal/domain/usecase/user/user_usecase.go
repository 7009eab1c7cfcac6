package user

import (
	"context"
	"strings"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
)

// UseCase handles user-related business logic
type UseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new user use case
func NewUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateInput carries the fields for creating or updating a user
type CreateInput struct {
	Name        string
	Email       string
	PhoneNumber string
	CountryCode string
	Package     string
	City        string
	Country     string
	DateOfBirth string
	TimeOfBirth string
	BirthPlace  string
	Latitude    float64
	Longitude   float64
	Balance     string
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return errs.ErrInvalidRequest
	}
	if in.Package != "" && !entity.IsValidPackage(in.Package) {
		return errs.ErrInvalidRequest
	}
	return nil
}

// Create registers a new user
func (u *UseCase) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()
	user := &entity.User{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		PhoneNumber: in.PhoneNumber,
		CountryCode: in.CountryCode,
		Package:     entity.PackageBasic,
		Status:      entity.StatusActive,
		City:        in.City,
		Country:     in.Country,
		Birth: entity.BirthDetails{
			DateOfBirth: in.DateOfBirth,
			TimeOfBirth: in.TimeOfBirth,
			BirthPlace:  in.BirthPlace,
			Latitude:    in.Latitude,
			Longitude:   in.Longitude,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Package != "" {
		user.Package = entity.PackageTier(in.Package)
	}
	if in.Balance != "" {
		paise, err := entity.ParseAmount(in.Balance)
		if err != nil {
			return nil, err
		}
		user.SetBalance(paise, u.timeProvider)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"email": user.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

// GetByID retrieves a user by ID
func (u *UseCase) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}

// Exists reports whether a user with the given ID exists
func (u *UseCase) Exists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}
	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List retrieves users matching the filter with pagination
func (u *UseCase) List(ctx context.Context, filter persistence.UserListFilter) ([]*entity.User, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	return u.userRepo.List(ctx, filter)
}

// Update applies admin edits to an existing user. Wallet balance is not
// editable here; it only moves through the ledger.
func (u *UseCase) Update(ctx context.Context, userID uint64, in CreateInput) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	user.PhoneNumber = in.PhoneNumber
	user.CountryCode = in.CountryCode
	user.City = in.City
	user.Country = in.Country
	user.Birth = entity.BirthDetails{
		DateOfBirth: in.DateOfBirth,
		TimeOfBirth: in.TimeOfBirth,
		BirthPlace:  in.BirthPlace,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}
	if in.Package != "" {
		user.Package = entity.PackageTier(in.Package)
	}
	user.UpdatedAt = u.timeProvider.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.logger.Error("Failed to update user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return user, nil
}

// SetStatus toggles a user's account status
func (u *UseCase) SetStatus(ctx context.Context, userID uint64, status string) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !entity.IsValidStatus(status) {
		return nil, errs.ErrInvalidRequest
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Status = entity.UserStatus(status)
	user.UpdatedAt = u.timeProvider.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("User status changed", map[string]any{
		"user_id": userID,
		"status":  status,
	})
	return user, nil
}

// Delete removes a user. Users referenced by transactions or report
// history rows are never hard-deleted.
func (u *UseCase) Delete(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		if !errs.IsUserNotFoundError(err) {
			u.logger.Error("Failed to delete user", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return err
	}
	u.logger.Info("User deleted", map[string]any{"user_id": userID})
	return nil
}
