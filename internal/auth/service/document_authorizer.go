package service

import (
	"strings"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	apperrors "github.com/allisson/docguard/internal/errors"
)

// resourceHandler is the imperative authorization rule for one operation on
// one document instance.
type resourceHandler func(
	principal *authDomain.Principal,
	document *documentsDomain.Document,
) authDomain.Decision

// documentAuthorizer implements DocumentAuthorizer with handlers keyed by
// operation. Create has no per-instance rule (creation is a normalization
// transform on the store's create path) and Delete is gated by the policy
// registry, so only Read and Update are registered here.
type documentAuthorizer struct {
	handlers map[authDomain.Operation]resourceHandler
}

// NewDocumentAuthorizer creates the document resource authorizer.
func NewDocumentAuthorizer() DocumentAuthorizer {
	return &documentAuthorizer{
		handlers: map[authDomain.Operation]resourceHandler{
			authDomain.OperationRead:   authorizeRead,
			authDomain.OperationUpdate: authorizeUpdate,
		},
	}
}

// Authorize dispatches to the handler for the operation. Fail-closed: any
// configuration error or missing input produces a Deny decision alongside
// the error.
func (a *documentAuthorizer) Authorize(
	principal *authDomain.Principal,
	operation authDomain.Operation,
	document *documentsDomain.Document,
) (authDomain.Decision, error) {
	if principal == nil {
		return authDomain.Deny("no_principal"), apperrors.Wrap(apperrors.ErrUnauthorized, "no principal")
	}
	if document == nil {
		return authDomain.Deny("no_resource"), apperrors.Wrap(apperrors.ErrInvalidInput, "no document")
	}

	handler, exists := a.handlers[operation]
	if !exists {
		return authDomain.Deny("unsupported_operation"),
			apperrors.Wrapf(authDomain.ErrUnsupportedOperation, "operation %q", operation)
	}

	return handler(principal, document), nil
}

// CanView reports read visibility, used by both single-document reads and
// list filtering.
func (a *documentAuthorizer) CanView(
	principal *authDomain.Principal,
	document *documentsDomain.Document,
) bool {
	if principal == nil || document == nil {
		return false
	}
	return authorizeRead(principal, document).Allowed
}

// authorizeRead denies manager-only documents to non-managers, and documents
// outside the principal's department unless the document carries the "All"
// wildcard. Department comparison is case-insensitive.
func authorizeRead(
	principal *authDomain.Principal,
	document *documentsDomain.Document,
) authDomain.Decision {
	if document.ManagerOnly && !principal.HasRole(authDomain.RoleManager) {
		return authDomain.Deny("manager_only")
	}

	if !strings.EqualFold(document.Department, authDomain.DepartmentAll) &&
		!strings.EqualFold(document.Department, principal.Department()) {
		return authDomain.Deny("department_mismatch")
	}

	return authDomain.Allow()
}

// authorizeUpdate allows the document's owner regardless of role, and
// managers of the document's own department. Everyone else is denied.
func authorizeUpdate(
	principal *authDomain.Principal,
	document *documentsDomain.Document,
) authDomain.Decision {
	if document.Owner != "" && document.Owner == principal.Subject() {
		return authDomain.Allow()
	}

	if principal.HasRole(authDomain.RoleManager) &&
		strings.EqualFold(document.Department, principal.Department()) {
		return authDomain.Allow()
	}

	return authDomain.Deny("not_owner_or_department_manager")
}
