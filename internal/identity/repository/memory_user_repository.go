// Package repository provides the in-memory user repository backing the
// identity store.
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	identityDomain "github.com/allisson/docguard/internal/identity/domain"
	identityUseCase "github.com/allisson/docguard/internal/identity/usecase"
)

// memoryUserRepository implements UserRepository with an in-process map.
// Account names are matched case-insensitively.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*identityDomain.User // keyed by lowercase account name
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() identityUseCase.UserRepository {
	return &memoryUserRepository{
		users: make(map[string]*identityDomain.User),
	}
}

// Create stores a new user.
func (r *memoryUserRepository) Create(ctx context.Context, user *identityDomain.User) error {
	key := strings.ToLower(user.UserName)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[key]; exists {
		return identityDomain.ErrUserAlreadyExists
	}

	stored := copyUser(user)
	r.users[key] = stored
	return nil
}

// GetByName retrieves a user by account name.
func (r *memoryUserRepository) GetByName(
	ctx context.Context,
	userName string,
) (*identityDomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[strings.ToLower(userName)]
	if !exists {
		return nil, identityDomain.ErrUserNotFound
	}

	return copyUser(user), nil
}

// List returns all users ordered by account name.
func (r *memoryUserRepository) List(ctx context.Context) ([]*identityDomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*identityDomain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, copyUser(user))
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].UserName < users[j].UserName
	})

	return users, nil
}

// copyUser returns a deep copy so callers cannot mutate stored state.
func copyUser(user *identityDomain.User) *identityDomain.User {
	copied := *user
	copied.Roles = make([]string, len(user.Roles))
	copy(copied.Roles, user.Roles)
	return &copied
}
