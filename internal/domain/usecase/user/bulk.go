package user

import (
	"context"
	"errors"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
)

// Bulk operations the admin dashboard issues against a selection of users.
const (
	BulkDelete     = "delete"
	BulkActivate   = "activate"
	BulkDeactivate = "deactivate"
	BulkBlock      = "block"
	BulkUpgrade    = "upgrade"
	BulkDowngrade  = "downgrade"
)

// BulkInput names the operation and the users it applies to.
type BulkInput struct {
	Operation string
	UserIDs   []uint64
}

// BulkResult reports how many users the operation actually changed.
type BulkResult struct {
	Operation string `json:"operation"`
	Count     int    `json:"count"`
}

func (in BulkInput) validate() error {
	if len(in.UserIDs) == 0 {
		return errs.ErrInvalidRequest
	}
	for _, id := range in.UserIDs {
		if id == 0 {
			return errs.ErrInvalidUserID
		}
	}
	switch in.Operation {
	case BulkDelete, BulkActivate, BulkDeactivate, BulkBlock, BulkUpgrade, BulkDowngrade:
		return nil
	default:
		return errs.ErrInvalidRequest
	}
}

// Bulk applies one operation across the selected users. Users that are
// unknown or already in the target state are skipped; Count covers only
// the users that changed. Deletes skip users that transactions or report
// history still reference rather than failing the whole batch.
func (u *UseCase) Bulk(ctx context.Context, in BulkInput) (*BulkResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	count := 0
	for _, id := range in.UserIDs {
		changed, err := u.bulkApplyOne(ctx, in.Operation, id)
		if err != nil {
			return nil, err
		}
		if changed {
			count++
		}
	}

	u.logger.Info("Bulk user operation applied", map[string]any{
		"operation": in.Operation,
		"selected":  len(in.UserIDs),
		"changed":   count,
	})
	return &BulkResult{Operation: in.Operation, Count: count}, nil
}

func (u *UseCase) bulkApplyOne(ctx context.Context, operation string, id uint64) (bool, error) {
	if operation == BulkDelete {
		err := u.userRepo.Delete(ctx, id)
		switch {
		case err == nil:
			return true, nil
		case errs.IsUserNotFoundError(err) || errors.Is(err, errs.ErrUserHasReferences):
			return false, nil
		default:
			return false, err
		}
	}

	usr, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	switch operation {
	case BulkActivate:
		if usr.Status == entity.StatusActive {
			return false, nil
		}
		usr.Status = entity.StatusActive
	case BulkDeactivate:
		if usr.Status == entity.StatusInactive {
			return false, nil
		}
		usr.Status = entity.StatusInactive
	case BulkBlock:
		if usr.Status == entity.StatusBlocked {
			return false, nil
		}
		usr.Status = entity.StatusBlocked
	case BulkUpgrade:
		if usr.Package == entity.PackagePremium {
			return false, nil
		}
		usr.Package = entity.PackagePremium
	case BulkDowngrade:
		if usr.Package == entity.PackageBasic {
			return false, nil
		}
		usr.Package = entity.PackageBasic
	}

	usr.UpdatedAt = u.timeProvider.Now()
	if err := u.userRepo.Update(ctx, usr); err != nil {
		return false, err
	}
	return true, nil
}
