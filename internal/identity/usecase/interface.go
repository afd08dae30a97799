// Package usecase implements the identity store façade consumed by the
// authorization core.
package usecase

import (
	"context"

	identityDomain "github.com/allisson/docguard/internal/identity/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create stores a new user. Returns ErrUserAlreadyExists if the account
	// name is taken.
	Create(ctx context.Context, user *identityDomain.User) error

	// GetByName retrieves a user by account name (case-insensitive).
	// Returns ErrUserNotFound if not found.
	GetByName(ctx context.Context, userName string) (*identityDomain.User, error)

	// List returns all users ordered by account name.
	List(ctx context.Context) ([]*identityDomain.User, error)
}
