// Package service provides password hashing for the identity store.
// Uses Argon2id so stored hashes resist offline brute force.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/docguard/internal/errors"
)

// PasswordService hashes and verifies account passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (string, error)

	// VerifyPassword performs a constant-time comparison between a plain
	// password and its stored hash.
	VerifyPassword(plainPassword string, hashedPassword string) bool
}

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plain text password using Argon2id.
func (p *passwordService) HashPassword(plainPassword string) (string, error) {
	hashed, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// VerifyPassword performs a constant-time comparison between a plain password and its hash.
func (p *passwordService) VerifyPassword(plainPassword string, hashedPassword string) bool {
	ok, err := p.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a new PasswordService instance using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
