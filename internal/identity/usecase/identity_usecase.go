package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	identityDomain "github.com/allisson/docguard/internal/identity/domain"
	identityService "github.com/allisson/docguard/internal/identity/service"
)

// IdentityUseCase is the identity store façade: account lifecycle plus the
// lookup operations the authorization core consumes (FindByName,
// VerifyPassword, GetRoles, GetClaims).
type IdentityUseCase interface {
	// CreateUser creates a new account with a hashed password.
	CreateUser(ctx context.Context, input *identityDomain.CreateUserInput) (*identityDomain.User, error)

	// ListUsers returns all accounts ordered by name.
	ListUsers(ctx context.Context) ([]*identityDomain.User, error)

	// FindByName retrieves a user by account name.
	FindByName(ctx context.Context, userName string) (*identityDomain.User, error)

	// VerifyPassword checks the password against the user's stored hash.
	VerifyPassword(ctx context.Context, user *identityDomain.User, password string) bool

	// GetRoles returns the user's role memberships.
	GetRoles(ctx context.Context, user *identityDomain.User) ([]string, error)

	// GetClaims returns the user's identity claims (name, email, department).
	GetClaims(ctx context.Context, user *identityDomain.User) ([]authDomain.Claim, error)
}

// identityUseCase implements IdentityUseCase.
type identityUseCase struct {
	userRepo        UserRepository
	passwordService identityService.PasswordService
}

// CreateUser creates a new account with a hashed password.
func (i *identityUseCase) CreateUser(
	ctx context.Context,
	input *identityDomain.CreateUserInput,
) (*identityDomain.User, error) {
	passwordHash, err := i.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &identityDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		UserName:     input.UserName,
		PasswordHash: passwordHash,
		GivenName:    input.GivenName,
		FamilyName:   input.FamilyName,
		Email:        input.Email,
		Department:   input.Department,
		Roles:        input.Roles,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := i.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns all accounts ordered by name.
func (i *identityUseCase) ListUsers(ctx context.Context) ([]*identityDomain.User, error) {
	return i.userRepo.List(ctx)
}

// FindByName retrieves a user by account name.
func (i *identityUseCase) FindByName(
	ctx context.Context,
	userName string,
) (*identityDomain.User, error) {
	return i.userRepo.GetByName(ctx, userName)
}

// VerifyPassword checks the password against the user's stored hash.
func (i *identityUseCase) VerifyPassword(
	ctx context.Context,
	user *identityDomain.User,
	password string,
) bool {
	return i.passwordService.VerifyPassword(password, user.PasswordHash)
}

// GetRoles returns the user's role memberships.
func (i *identityUseCase) GetRoles(
	ctx context.Context,
	user *identityDomain.User,
) ([]string, error) {
	roles := make([]string, len(user.Roles))
	copy(roles, user.Roles)
	return roles, nil
}

// GetClaims returns the user's identity claims. Only non-empty attributes
// become claims; a user without a department simply has no department claim.
func (i *identityUseCase) GetClaims(
	ctx context.Context,
	user *identityDomain.User,
) ([]authDomain.Claim, error) {
	var claims []authDomain.Claim

	if user.GivenName != "" {
		claims = append(claims, authDomain.Claim{
			Type:  authDomain.ClaimTypeGivenName,
			Value: user.GivenName,
		})
	}
	if user.FamilyName != "" {
		claims = append(claims, authDomain.Claim{
			Type:  authDomain.ClaimTypeFamilyName,
			Value: user.FamilyName,
		})
	}
	if user.Email != "" {
		claims = append(claims, authDomain.Claim{
			Type:  authDomain.ClaimTypeEmail,
			Value: user.Email,
		})
	}
	if user.Department != "" {
		claims = append(claims, authDomain.Claim{
			Type:  authDomain.ClaimTypeDepartment,
			Value: user.Department,
		})
	}

	return claims, nil
}

// NewIdentityUseCase creates a new IdentityUseCase with the provided dependencies.
func NewIdentityUseCase(
	userRepo UserRepository,
	passwordService identityService.PasswordService,
) IdentityUseCase {
	return &identityUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
