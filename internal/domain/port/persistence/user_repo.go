package persistence

import (
	"context"

	"github.com/astrodash/astro-api/internal/domain/entity"
)

// UserListFilter narrows and pages user listings
type UserListFilter struct {
	Search string // matches name or email
	Status string
	Page   int
	Limit  int
}

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update updates user information
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// List retrieves users matching the filter, newest first, with a total count
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)

	// Delete removes a user. Deletion is refused while transactions or
	// report history rows reference the user.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrUserHasReferences: If transactions or reports reference the user
	Delete(ctx context.Context, id uint64) error
}
