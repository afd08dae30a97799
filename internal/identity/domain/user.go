// Package domain defines the identity store's user model.
//
// The identity store is a collaborator of the authorization core: it owns
// accounts, password hashes, role memberships and identity claims, but takes
// no part in authorization decisions.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account held by the identity store.
type User struct {
	ID           uuid.UUID
	UserName     string // unique account name, also used as the token subject
	PasswordHash string //nolint:gosec // argon2id hash, not a plaintext credential
	GivenName    string
	FamilyName   string
	Email        string
	Department   string
	Roles        []string
	IsActive     bool
	CreatedAt    time.Time
}

// CreateUserInput contains the parameters for creating a new user account.
type CreateUserInput struct {
	UserName   string
	Password   string
	GivenName  string
	FamilyName string
	Email      string
	Department string
	Roles      []string
}
