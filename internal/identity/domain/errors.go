package domain

import (
	"github.com/allisson/docguard/internal/errors"
)

// Identity store errors.
var (
	// ErrUserNotFound indicates a user with the specified name was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the account name is already taken.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
