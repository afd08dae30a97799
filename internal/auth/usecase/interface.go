// Package usecase defines business logic interfaces for authentication and
// authorization operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	identityDomain "github.com/allisson/docguard/internal/identity/domain"
)

// IdentityStore is the external collaborator holding users, their roles and
// their claims. The authorization core never persists identities itself.
type IdentityStore interface {
	// FindByName retrieves a user by account name.
	// Returns ErrUserNotFound if no such user exists.
	FindByName(ctx context.Context, userName string) (*identityDomain.User, error)

	// VerifyPassword performs a constant-time check of the password against
	// the user's stored hash.
	VerifyPassword(ctx context.Context, user *identityDomain.User, password string) bool

	// GetRoles returns the user's role memberships.
	GetRoles(ctx context.Context, user *identityDomain.User) ([]string, error)

	// GetClaims returns the user's identity claims (name, email, department).
	GetClaims(ctx context.Context, user *identityDomain.User) ([]authDomain.Claim, error)
}

// TokenUseCase issues bearer tokens on login and validates inbound tokens
// into request principals.
type TokenUseCase interface {
	// Login authenticates the user and issues a signed bearer token carrying
	// a fresh claim set. Invalid user names and wrong passwords both return
	// ErrInvalidCredentials to prevent enumeration.
	Login(ctx context.Context, userName, password string) (*authDomain.LoginOutput, error)

	// Authenticate validates a bearer token and returns the request
	// principal. The principal lives only for the current request.
	Authenticate(ctx context.Context, token string) (*authDomain.Principal, error)
}

// AuthorizationUseCase is the single decision façade combining the policy
// registry (declarative tier) and the document authorizer (resource tier).
// Every call is a fresh evaluation; there is no caching.
type AuthorizationUseCase interface {
	// CheckPolicy evaluates the named declarative policy against the
	// principal's claims. Configuration errors (unknown policy) are
	// returned alongside a Deny decision so failures never grant access.
	CheckPolicy(
		ctx context.Context,
		principal *authDomain.Principal,
		policyName string,
	) (authDomain.Decision, error)

	// CheckResource evaluates the per-instance rule for the operation on the
	// document. Unsupported operations are returned alongside a Deny
	// decision so failures never grant access.
	CheckResource(
		ctx context.Context,
		principal *authDomain.Principal,
		operation authDomain.Operation,
		document *documentsDomain.Document,
	) (authDomain.Decision, error)

	// CanView reports list/read visibility of the document for the principal.
	CanView(principal *authDomain.Principal, document *documentsDomain.Document) bool
}
