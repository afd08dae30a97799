// Package domain defines the claims-based authorization domain models.
//
// It provides immutable claim sets carried by bearer tokens, declarative
// requirements evaluated against those claims, and per-operation resource
// authorization for documents.
package domain

import (
	"strings"
)

// Well-known claim types. Claim types are open strings: callers may attach
// claims beyond this list and the model preserves them.
const (
	// ClaimTypeSubject is the stable identifier of the principal ("sub").
	ClaimTypeSubject = "sub"

	// ClaimTypeTokenID is the unique-per-issuance token identifier ("jti").
	ClaimTypeTokenID = "jti"

	// ClaimTypeGivenName is the principal's given name.
	ClaimTypeGivenName = "given_name"

	// ClaimTypeFamilyName is the principal's family name.
	ClaimTypeFamilyName = "family_name"

	// ClaimTypeEmail is the principal's email address.
	ClaimTypeEmail = "email"

	// ClaimTypeDepartment is the organizational department of the principal.
	ClaimTypeDepartment = "department"

	// ClaimTypeRole carries a role membership. Unlike the other types, role
	// claims are expected to repeat for multi-role principals.
	ClaimTypeRole = "role"
)

// Well-known role and department values.
const (
	// RoleManager grants manager-level document access.
	RoleManager = "Manager"

	// RoleStaff grants baseline document access.
	RoleStaff = "Staff"

	// DepartmentAll is the sentinel department meaning "visible to every department".
	DepartmentAll = "All"
)

// Claim is a single typed identity assertion about a principal.
type Claim struct {
	Type  string
	Value string
}

// ClaimSet is an immutable, ordered collection of claims. A fresh set is
// built at token issuance and never mutated afterwards; duplicate claim
// types are retained in order and Get resolves to the first occurrence.
type ClaimSet struct {
	claims []Claim
}

// NewClaimSet builds a claim set from the given claims. The input slice is
// copied so later mutation by the caller cannot affect the set.
func NewClaimSet(claims ...Claim) ClaimSet {
	copied := make([]Claim, len(claims))
	copy(copied, claims)
	return ClaimSet{claims: copied}
}

// Claims returns a copy of all claims in insertion order.
func (cs ClaimSet) Claims() []Claim {
	copied := make([]Claim, len(cs.claims))
	copy(copied, cs.claims)
	return copied
}

// Len returns the number of claims in the set.
func (cs ClaimSet) Len() int {
	return len(cs.claims)
}

// Get returns the value of the first claim of the given type.
// First-wins resolution keeps behavior deterministic when a singular claim
// type was duplicated upstream.
func (cs ClaimSet) Get(claimType string) (string, bool) {
	for _, claim := range cs.claims {
		if claim.Type == claimType {
			return claim.Value, true
		}
	}
	return "", false
}

// GetAll returns the values of every claim of the given type, in order.
func (cs ClaimSet) GetAll(claimType string) []string {
	var values []string
	for _, claim := range cs.claims {
		if claim.Type == claimType {
			values = append(values, claim.Value)
		}
	}
	return values
}

// Subject returns the subject identifier claim, or "" if absent.
func (cs ClaimSet) Subject() string {
	value, _ := cs.Get(ClaimTypeSubject)
	return value
}

// Department returns the department claim, or "" if absent.
func (cs ClaimSet) Department() string {
	value, _ := cs.Get(ClaimTypeDepartment)
	return value
}

// Roles returns every role claim value held by the principal.
func (cs ClaimSet) Roles() []string {
	return cs.GetAll(ClaimTypeRole)
}

// HasRole reports whether the principal holds the given role.
// Role comparison is case-sensitive, matching the registry semantics.
func (cs ClaimSet) HasRole(role string) bool {
	for _, claim := range cs.claims {
		if claim.Type == ClaimTypeRole && claim.Value == role {
			return true
		}
	}
	return false
}

// HasClaim reports whether the set contains a claim of the given type
// with the given value.
func (cs ClaimSet) HasClaim(claimType, value string) bool {
	for _, claim := range cs.claims {
		if claim.Type == claimType && claim.Value == value {
			return true
		}
	}
	return false
}

// InDepartment reports whether the principal's department claim matches the
// given department, case-insensitively.
func (cs ClaimSet) InDepartment(department string) bool {
	return strings.EqualFold(cs.Department(), department)
}

// Principal is the validated identity of the caller for the current request.
// It is created per request from a validated bearer token and never persisted.
type Principal struct {
	Claims ClaimSet
}

// NewPrincipal wraps a validated claim set as a request principal.
func NewPrincipal(claims ClaimSet) *Principal {
	return &Principal{Claims: claims}
}

// Subject returns the principal's subject identifier.
func (p *Principal) Subject() string {
	return p.Claims.Subject()
}

// Department returns the principal's department claim.
func (p *Principal) Department() string {
	return p.Claims.Department()
}

// HasRole reports whether the principal holds the given role.
func (p *Principal) HasRole(role string) bool {
	return p.Claims.HasRole(role)
}
