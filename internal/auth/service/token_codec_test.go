package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	"github.com/allisson/docguard/internal/config"
	apperrors "github.com/allisson/docguard/internal/errors"
)

func testCodecConfig() *config.Config {
	return &config.Config{
		TokenSigningKey: "test-signing-key-with-enough-entropy",
		TokenIssuer:     "docguard",
		TokenAudience:   "docguard-api",
	}
}

func testClaimSet() authDomain.ClaimSet {
	return authDomain.NewClaimSet(
		authDomain.Claim{Type: authDomain.ClaimTypeSubject, Value: "cwilliams"},
		authDomain.Claim{Type: authDomain.ClaimTypeGivenName, Value: "Carol"},
		authDomain.Claim{Type: authDomain.ClaimTypeDepartment, Value: "IT"},
		authDomain.Claim{Type: authDomain.ClaimTypeRole, Value: authDomain.RoleStaff},
		authDomain.Claim{Type: authDomain.ClaimTypeRole, Value: authDomain.RoleManager},
	)
}

func TestNewTokenCodec(t *testing.T) {
	t.Run("Success_ValidConfig", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())

		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("Error_MissingSigningKey", func(t *testing.T) {
		cfg := testCodecConfig()
		cfg.TokenSigningKey = ""

		codec, err := NewTokenCodec(cfg)

		assert.Nil(t, codec)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_MissingIssuer", func(t *testing.T) {
		cfg := testCodecConfig()
		cfg.TokenIssuer = ""

		codec, err := NewTokenCodec(cfg)

		assert.Nil(t, codec)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTokenCodec_Issue(t *testing.T) {
	t.Run("Success_RoundTripPreservesClaims", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		token, expiresAt, err := codec.Issue(testClaimSet(), time.Hour)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := codec.Validate(token)
		require.NoError(t, err)

		assert.Equal(t, "cwilliams", claims.Subject())
		assert.Equal(t, "IT", claims.Department())
		assert.Equal(t, []string{authDomain.RoleStaff, authDomain.RoleManager}, claims.Roles())
		assert.True(t, claims.HasClaim(authDomain.ClaimTypeGivenName, "Carol"))

		tokenID, found := claims.Get(authDomain.ClaimTypeTokenID)
		assert.True(t, found)
		assert.NotEmpty(t, tokenID)
	})

	t.Run("Success_TokensAreByteDistinctPerIssuance", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		first, _, err := codec.Issue(testClaimSet(), time.Hour)
		require.NoError(t, err)
		second, _, err := codec.Issue(testClaimSet(), time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Success_DuplicateSingularClaimFirstWins", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		claimSet := authDomain.NewClaimSet(
			authDomain.Claim{Type: authDomain.ClaimTypeSubject, Value: "jdoe"},
			authDomain.Claim{Type: authDomain.ClaimTypeDepartment, Value: "Sales"},
			authDomain.Claim{Type: authDomain.ClaimTypeDepartment, Value: "IT"},
		)

		token, _, err := codec.Issue(claimSet, time.Hour)
		require.NoError(t, err)

		claims, err := codec.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "Sales", claims.Department())
	})

	t.Run("Error_NonPositiveTTL", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		_, _, err = codec.Issue(testClaimSet(), 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, _, err = codec.Issue(testClaimSet(), -time.Minute)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTokenCodec_Validate(t *testing.T) {
	t.Run("Error_ExpiredToken", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		token, _, err := codec.Issue(testClaimSet(), time.Millisecond)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = codec.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Error_WrongSigningKey", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		otherCfg := testCodecConfig()
		otherCfg.TokenSigningKey = "a-completely-different-signing-key"
		otherCodec, err := NewTokenCodec(otherCfg)
		require.NoError(t, err)

		token, _, err := otherCodec.Issue(testClaimSet(), time.Hour)
		require.NoError(t, err)

		_, err = codec.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
	})

	t.Run("Error_IssuerMismatch", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		otherCfg := testCodecConfig()
		otherCfg.TokenIssuer = "another-issuer"
		otherCodec, err := NewTokenCodec(otherCfg)
		require.NoError(t, err)

		token, _, err := otherCodec.Issue(testClaimSet(), time.Hour)
		require.NoError(t, err)

		_, err = codec.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrTokenIssuerMismatch)
	})

	t.Run("Error_AudienceMismatch", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		otherCfg := testCodecConfig()
		otherCfg.TokenAudience = "another-audience"
		otherCodec, err := NewTokenCodec(otherCfg)
		require.NoError(t, err)

		token, _, err := otherCodec.Issue(testClaimSet(), time.Hour)
		require.NoError(t, err)

		_, err = codec.Validate(token)
		assert.ErrorIs(t, err, authDomain.ErrTokenAudienceMismatch)
	})

	t.Run("Error_GarbageToken", func(t *testing.T) {
		codec, err := NewTokenCodec(testCodecConfig())
		require.NoError(t, err)

		_, err = codec.Validate("not-a-jwt")
		assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
	})
}
