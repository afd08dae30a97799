package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityDomain "github.com/allisson/docguard/internal/identity/domain"
)

func testUser(userName string) *identityDomain.User {
	return &identityDomain.User{
		ID:         uuid.Must(uuid.NewV7()),
		UserName:   userName,
		GivenName:  "Test",
		Department: "IT",
		Roles:      []string{"Staff"},
		IsActive:   true,
	}
}

func TestMemoryUserRepository_Create(t *testing.T) {
	ctx := t.Context()

	t.Run("Success_StoresUser", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		require.NoError(t, repo.Create(ctx, testUser("jdoe")))

		user, err := repo.GetByName(ctx, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, "jdoe", user.UserName)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		require.NoError(t, repo.Create(ctx, testUser("jdoe")))

		err := repo.Create(ctx, testUser("jdoe"))
		assert.ErrorIs(t, err, identityDomain.ErrUserAlreadyExists)
	})

	t.Run("Error_DuplicateNameDifferentCase", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		require.NoError(t, repo.Create(ctx, testUser("jdoe")))

		err := repo.Create(ctx, testUser("JDoe"))
		assert.ErrorIs(t, err, identityDomain.ErrUserAlreadyExists)
	})

	t.Run("Success_StoredCopyIsIsolated", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		original := testUser("jdoe")
		require.NoError(t, repo.Create(ctx, original))

		original.Roles[0] = "Manager"
		original.GivenName = "Changed"

		stored, err := repo.GetByName(ctx, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, []string{"Staff"}, stored.Roles)
		assert.Equal(t, "Test", stored.GivenName)
	})
}

func TestMemoryUserRepository_GetByName(t *testing.T) {
	ctx := t.Context()

	t.Run("Success_CaseInsensitiveLookup", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		require.NoError(t, repo.Create(ctx, testUser("CWilliams")))

		user, err := repo.GetByName(ctx, "cwilliams")
		require.NoError(t, err)
		assert.Equal(t, "CWilliams", user.UserName)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		user, err := repo.GetByName(ctx, "nobody")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, identityDomain.ErrUserNotFound)
	})

	t.Run("Success_ReturnedCopyIsIsolated", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		require.NoError(t, repo.Create(ctx, testUser("jdoe")))

		first, err := repo.GetByName(ctx, "jdoe")
		require.NoError(t, err)
		first.Roles[0] = "Manager"

		second, err := repo.GetByName(ctx, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, []string{"Staff"}, second.Roles)
	})
}

func TestMemoryUserRepository_List(t *testing.T) {
	ctx := t.Context()

	t.Run("Success_OrderedByName", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		require.NoError(t, repo.Create(ctx, testUser("ssmith")))
		require.NoError(t, repo.Create(ctx, testUser("cwilliams")))
		require.NoError(t, repo.Create(ctx, testUser("jdoe")))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "cwilliams", users[0].UserName)
		assert.Equal(t, "jdoe", users[1].UserName)
		assert.Equal(t, "ssmith", users[2].UserName)
	})

	t.Run("Success_EmptyRepository", func(t *testing.T) {
		repo := NewMemoryUserRepository()

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
