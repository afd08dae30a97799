package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityRepository "github.com/allisson/docguard/internal/identity/repository"
	identityService "github.com/allisson/docguard/internal/identity/service"
	identityUseCase "github.com/allisson/docguard/internal/identity/usecase"
)

func newTestIdentity() identityUseCase.IdentityUseCase {
	return identityUseCase.NewIdentityUseCase(
		identityRepository.NewMemoryUserRepository(),
		identityService.NewPasswordService(),
	)
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		identity := newTestIdentity()

		var out bytes.Buffer
		err := RunCreateUser(
			ctx,
			identity,
			logger,
			"jdoe",
			"secret",
			"John",
			"Doe",
			"jdoe@example.com",
			"IT",
			"Staff",
			"text",
			IOTuple{Writer: &out},
		)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "User created:")
		assert.Contains(t, out.String(), "jdoe")
		assert.Contains(t, out.String(), "IT")

		user, err := identity.FindByName(ctx, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, []string{"Staff"}, user.Roles)
	})

	t.Run("json-output", func(t *testing.T) {
		identity := newTestIdentity()

		var out bytes.Buffer
		err := RunCreateUser(
			ctx,
			identity,
			logger,
			"cwilliams",
			"secret",
			"Carol",
			"Williams",
			"",
			"IT",
			"Staff, Manager",
			"json",
			IOTuple{Writer: &out},
		)

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"user_name": "cwilliams"`)
		assert.Contains(t, out.String(), `"Manager"`)
	})

	t.Run("duplicate-user", func(t *testing.T) {
		identity := newTestIdentity()

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		require.NoError(t, RunCreateUser(
			ctx, identity, logger,
			"jdoe", "secret", "", "", "", "IT", "Staff", "text", io,
		))

		err := RunCreateUser(
			ctx, identity, logger,
			"jdoe", "secret", "", "", "", "IT", "Staff", "text", io,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create user")
	})
}

func TestParseRoles(t *testing.T) {
	assert.Nil(t, parseRoles(""))
	assert.Equal(t, []string{"Staff"}, parseRoles("Staff"))
	assert.Equal(t, []string{"Staff", "Manager"}, parseRoles(" Staff , Manager "))
	assert.Equal(t, []string{"Staff"}, parseRoles("Staff,,"))
}
