package service

import (
	"errors"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	"github.com/allisson/docguard/internal/config"
	apperrors "github.com/allisson/docguard/internal/errors"
)

// registeredClaims are the JWT envelope claims managed by the codec itself.
// They are stripped when a validated token is turned back into a claim set,
// except for the token id which stays addressable as a claim.
var registeredClaims = map[string]bool{
	"iss": true,
	"aud": true,
	"iat": true,
	"exp": true,
	"nbf": true,
}

// orderedClaimTypes fixes the claim order when rebuilding a claim set from a
// decoded token, since JWT payloads are unordered maps.
var orderedClaimTypes = []string{
	authDomain.ClaimTypeSubject,
	authDomain.ClaimTypeTokenID,
	authDomain.ClaimTypeGivenName,
	authDomain.ClaimTypeFamilyName,
	authDomain.ClaimTypeEmail,
	authDomain.ClaimTypeDepartment,
}

// tokenCodec implements TokenCodec with HMAC-SHA256 signed JWTs.
type tokenCodec struct {
	signingKey []byte
	issuer     string
	audience   string
}

// NewTokenCodec creates a TokenCodec from configuration. The signing key,
// issuer and audience are explicit collaborators: the codec never reads
// ambient state and the key is never logged.
func NewTokenCodec(cfg *config.Config) (TokenCodec, error) {
	if cfg.TokenSigningKey == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token signing key is required")
	}
	if cfg.TokenIssuer == "" || cfg.TokenAudience == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token issuer and audience are required")
	}

	return &tokenCodec{
		signingKey: []byte(cfg.TokenSigningKey),
		issuer:     cfg.TokenIssuer,
		audience:   cfg.TokenAudience,
	}, nil
}

// Issue signs the claim set into a compact JWT valid for ttl.
func (t *tokenCodec) Issue(
	claims authDomain.ClaimSet,
	ttl time.Duration,
) (string, time.Time, error) {
	if ttl <= 0 {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "token ttl must be positive")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(ttl)

	payload := jwt.MapClaims{
		"iss": t.issuer,
		"aud": t.audience,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(expiresAt),
		// Unique per issuance: two tokens for the same claims are byte-distinct.
		authDomain.ClaimTypeTokenID: uuid.Must(uuid.NewV7()).String(),
	}

	// Roles are carried as an array claim; they are the only repeating type.
	if roles := claims.Roles(); len(roles) > 0 {
		payload[authDomain.ClaimTypeRole] = roles
	}

	// Remaining claims are scalar. First occurrence wins for duplicated
	// singular types; the envelope claims above cannot be overridden.
	for _, claim := range claims.Claims() {
		if claim.Type == authDomain.ClaimTypeRole || registeredClaims[claim.Type] {
			continue
		}
		if _, exists := payload[claim.Type]; exists {
			continue
		}
		payload[claim.Type] = claim.Value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Validate verifies the token and rebuilds the embedded claim set.
func (t *tokenCodec) Validate(token string) (authDomain.ClaimSet, error) {
	payload := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(
		token,
		payload,
		func(*jwt.Token) (any, error) { return t.signingKey, nil },
		// Pin the algorithm so an attacker cannot downgrade to "none" or
		// swap in an asymmetric scheme. HMAC verification inside jwt/v5 is
		// constant-time.
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return authDomain.ClaimSet{}, mapTokenError(err)
	}

	return claimSetFromPayload(payload), nil
}

// mapTokenError converts jwt/v5 validation failures into the domain token
// error taxonomy. All of them wrap ErrUnauthorized, so callers surface a
// uniform authentication failure.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return authDomain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return authDomain.ErrTokenIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return authDomain.ErrTokenAudienceMismatch
	default:
		return authDomain.ErrTokenInvalid
	}
}

// claimSetFromPayload rebuilds an ordered claim set from a decoded payload:
// well-known singular claims first, then roles, then any extra claims in
// lexical order for determinism.
func claimSetFromPayload(payload jwt.MapClaims) authDomain.ClaimSet {
	var claims []authDomain.Claim

	for _, claimType := range orderedClaimTypes {
		if value, ok := payload[claimType].(string); ok {
			claims = append(claims, authDomain.Claim{Type: claimType, Value: value})
		}
	}

	claims = append(claims, roleClaims(payload[authDomain.ClaimTypeRole])...)

	known := make(map[string]bool, len(orderedClaimTypes))
	for _, claimType := range orderedClaimTypes {
		known[claimType] = true
	}

	var extraTypes []string
	for claimType := range payload {
		if known[claimType] || registeredClaims[claimType] || claimType == authDomain.ClaimTypeRole {
			continue
		}
		extraTypes = append(extraTypes, claimType)
	}
	sort.Strings(extraTypes)

	for _, claimType := range extraTypes {
		if value, ok := payload[claimType].(string); ok {
			claims = append(claims, authDomain.Claim{Type: claimType, Value: value})
		}
	}

	return authDomain.NewClaimSet(claims...)
}

// roleClaims decodes the role claim, which may be absent, a single string,
// or an array of strings depending on how many roles were issued.
func roleClaims(value any) []authDomain.Claim {
	switch roles := value.(type) {
	case string:
		return []authDomain.Claim{{Type: authDomain.ClaimTypeRole, Value: roles}}
	case []any:
		claims := make([]authDomain.Claim, 0, len(roles))
		for _, role := range roles {
			if s, ok := role.(string); ok {
				claims = append(claims, authDomain.Claim{Type: authDomain.ClaimTypeRole, Value: s})
			}
		}
		return claims
	default:
		return nil
	}
}
