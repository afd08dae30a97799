// Package usecase implements business logic orchestration for authentication
// and authorization operations.
package usecase

import (
	"context"
	"errors"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	authService "github.com/allisson/docguard/internal/auth/service"
	"github.com/allisson/docguard/internal/config"
	identityDomain "github.com/allisson/docguard/internal/identity/domain"
)

// tokenUseCase implements TokenUseCase on top of the identity store and the
// token codec.
type tokenUseCase struct {
	config        *config.Config
	identityStore IdentityStore
	tokenCodec    authService.TokenCodec
}

// Login authenticates a user and issues a signed bearer token.
//
// This method:
// 1. Looks up the user by account name
// 2. Verifies the password against the stored hash
// 3. Builds a fresh claim set from the user's identity claims and roles
// 4. Issues a signed token with expiration from config
//
// Security Notes:
//   - Returns ErrInvalidCredentials for unknown users, inactive users and
//     wrong passwords alike to prevent user enumeration
//   - The claim set is rebuilt on every login, so role changes take effect
//     on the next token, never retroactively
func (t *tokenUseCase) Login(
	ctx context.Context,
	userName, password string,
) (*authDomain.LoginOutput, error) {
	user, err := t.identityStore.FindByName(ctx, userName)
	if err != nil {
		// If user not found, return generic error to prevent enumeration
		if errors.Is(err, identityDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !t.identityStore.VerifyPassword(ctx, user, password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	claims, err := t.buildClaims(ctx, user)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := t.tokenCodec.Issue(claims, t.config.TokenExpiration)
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate validates a bearer token and returns the request principal.
// Validation is stateless: the token itself carries the full claim set.
func (t *tokenUseCase) Authenticate(
	ctx context.Context,
	token string,
) (*authDomain.Principal, error) {
	claims, err := t.tokenCodec.Validate(token)
	if err != nil {
		return nil, err
	}

	return authDomain.NewPrincipal(claims), nil
}

// buildClaims assembles the immutable claim set issued into the token:
// subject first, then identity claims, then one role claim per membership.
func (t *tokenUseCase) buildClaims(
	ctx context.Context,
	user *identityDomain.User,
) (authDomain.ClaimSet, error) {
	identityClaims, err := t.identityStore.GetClaims(ctx, user)
	if err != nil {
		return authDomain.ClaimSet{}, err
	}

	roles, err := t.identityStore.GetRoles(ctx, user)
	if err != nil {
		return authDomain.ClaimSet{}, err
	}

	claims := make([]authDomain.Claim, 0, len(identityClaims)+len(roles)+1)
	claims = append(claims, authDomain.Claim{
		Type:  authDomain.ClaimTypeSubject,
		Value: user.UserName,
	})
	claims = append(claims, identityClaims...)
	for _, role := range roles {
		claims = append(claims, authDomain.Claim{
			Type:  authDomain.ClaimTypeRole,
			Value: role,
		})
	}

	return authDomain.NewClaimSet(claims...), nil
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	config *config.Config,
	identityStore IdentityStore,
	tokenCodec authService.TokenCodec,
) TokenUseCase {
	return &tokenUseCase{
		config:        config,
		identityStore: identityStore,
		tokenCodec:    tokenCodec,
	}
}
