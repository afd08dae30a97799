package domain

import (
	"github.com/allisson/docguard/internal/errors"
)

// Token validation errors. All of them wrap ErrUnauthorized so handlers
// surface a uniform authentication failure without leaking which check failed.
var (
	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "token invalid")

	// ErrTokenExpired indicates the token's expiry time has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenIssuerMismatch indicates the token was issued by an unexpected issuer.
	ErrTokenIssuerMismatch = errors.Wrap(errors.ErrUnauthorized, "token issuer mismatch")

	// ErrTokenAudienceMismatch indicates the token targets a different audience.
	ErrTokenAudienceMismatch = errors.Wrap(errors.ErrUnauthorized, "token audience mismatch")

	// ErrInvalidCredentials indicates a failed login. Kept generic to prevent
	// user enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)

// Policy and resource evaluation errors. These signal configuration or
// programming mistakes, never a legitimate Deny: evaluation returns Deny as
// a value, and callers treat these errors as fail-closed denials.
var (
	// ErrUnknownPolicy indicates evaluation was requested for an unregistered policy.
	ErrUnknownPolicy = errors.Wrap(errors.ErrNotFound, "unknown policy")

	// ErrDuplicatePolicy indicates a policy name was registered twice.
	ErrDuplicatePolicy = errors.Wrap(errors.ErrConflict, "duplicate policy")

	// ErrUnsupportedOperation indicates a resource check was requested for an
	// operation the document authorizer doesn't handle.
	ErrUnsupportedOperation = errors.Wrap(errors.ErrInvalidInput, "unsupported operation")
)
