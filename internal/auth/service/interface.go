// Package service provides the authorization core: stateless bearer-token
// encoding/validation, the declarative policy registry, and per-operation
// document authorization.
package service

import (
	"time"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
)

// TokenCodec encodes a claim set into a signed, time-bounded bearer token
// and validates tokens back into claim sets. Implementations hold the
// process-wide signing key and the expected issuer/audience.
type TokenCodec interface {
	// Issue produces a signed token embedding the claims, the configured
	// issuer and audience, an issued-at timestamp and an expiry of
	// issued-at + ttl. A unique token id is injected per issuance, so two
	// tokens for the same claims are always byte-distinct.
	Issue(claims authDomain.ClaimSet, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// Validate verifies signature, issuer, audience and expiry, and returns
	// the embedded claim set. Validation is all-or-nothing and has no side
	// effects. Failures are ErrTokenInvalid, ErrTokenExpired,
	// ErrTokenIssuerMismatch or ErrTokenAudienceMismatch.
	Validate(token string) (authDomain.ClaimSet, error)
}

// PolicyRegistry holds named declarative requirements. Registration happens
// once during startup configuration; the registry is read-only afterwards,
// which makes Evaluate safe for unlocked concurrent use.
type PolicyRegistry interface {
	// Register adds a named policy. Returns ErrDuplicatePolicy if the name
	// is already registered.
	Register(name string, requirement authDomain.Requirement) error

	// Evaluate checks the named policy against the claims. Returns
	// ErrUnknownPolicy if the name is not registered. Deny is a decision,
	// not an error.
	Evaluate(name string, claims authDomain.ClaimSet) (authDomain.Decision, error)

	// Names returns the registered policy names, for startup logging.
	Names() []string
}

// DocumentAuthorizer evaluates per-operation, per-instance authorization
// rules that cannot be expressed declaratively (ownership, department
// matching, manager-only flags).
type DocumentAuthorizer interface {
	// Authorize decides whether the principal may perform the operation on
	// the document. Unknown or non-instance operations return
	// ErrUnsupportedOperation together with a Deny decision (fail-closed).
	Authorize(
		principal *authDomain.Principal,
		operation authDomain.Operation,
		document *documentsDomain.Document,
	) (authDomain.Decision, error)

	// CanView reports whether the document is visible to the principal on
	// list/read paths. Same rule as the read operation.
	CanView(principal *authDomain.Principal, document *documentsDomain.Document) bool
}
