// Package domain defines the document domain model.
//
// Documents are department-scoped: every document belongs to a single
// department (or the "All" sentinel) and may additionally be restricted to
// managers. Visibility and mutation rules live in the auth domain; this
// package owns the entity itself and its pre-persistence normalization.
package domain

import (
	"time"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
)

// Document is a department-scoped protected resource.
type Document struct {
	ID          int64
	Content     string
	Department  string
	Owner       string // subject id of the creator; empty until created
	ManagerOnly bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeForCreate scopes a new document to its creator before persistence.
// The department is always forced to the creator's department claim, and the
// manager-only flag is stripped unless the creator holds the Manager role, so
// privilege cannot be self-escalated on create. The owner is set to the
// creator's subject id.
func (d *Document) NormalizeForCreate(creator *authDomain.Principal) {
	d.Department = creator.Department()
	d.Owner = creator.Subject()
	if !creator.HasRole(authDomain.RoleManager) {
		d.ManagerOnly = false
	}
}

// CreateDocumentInput contains the caller-supplied fields for a new document.
// Department and owner are not accepted from the caller; they are derived
// from the creator's claims during normalization.
type CreateDocumentInput struct {
	Content     string
	ManagerOnly bool
}

// UpdateDocumentInput contains the mutable fields of an existing document.
// ID, owner and creation time are never updated.
type UpdateDocumentInput struct {
	Content     string
	ManagerOnly bool
}
