package domain

import "slices"

// Requirement is a declarative rule evaluated purely against a claim set.
// Implementations must be side-effect free: a requirement either holds for
// the given claims or it doesn't.
type Requirement interface {
	// Satisfied reports whether the claim set meets the requirement.
	Satisfied(claims ClaimSet) bool
}

// RoleRequirement passes when the claim set holds at least one of the listed
// roles (OR semantics within the requirement).
type RoleRequirement struct {
	Roles []string
}

// Satisfied reports whether any role claim matches the allowed roles.
func (r RoleRequirement) Satisfied(claims ClaimSet) bool {
	for _, role := range claims.Roles() {
		if slices.Contains(r.Roles, role) {
			return true
		}
	}
	return false
}

// ClaimRequirement passes when the claim set contains a claim of Type whose
// value is in AllowedValues (OR semantics within the requirement).
// Value comparison is case-sensitive.
type ClaimRequirement struct {
	Type          string
	AllowedValues []string
}

// Satisfied reports whether any claim of the required type matches an allowed value.
func (r ClaimRequirement) Satisfied(claims ClaimSet) bool {
	for _, value := range claims.GetAll(r.Type) {
		if slices.Contains(r.AllowedValues, value) {
			return true
		}
	}
	return false
}

// CompositeRequirement is a conjunction: every sub-requirement must pass
// (AND across requirements, OR within each requirement's value set).
type CompositeRequirement struct {
	Requirements []Requirement
}

// Satisfied reports whether every sub-requirement holds.
// An empty composite is vacuously satisfied; registries should reject it.
func (r CompositeRequirement) Satisfied(claims ClaimSet) bool {
	for _, req := range r.Requirements {
		if !req.Satisfied(claims) {
			return false
		}
	}
	return true
}

// RequirementBuilder assembles a requirement additively: each RequireRole or
// RequireClaim call appends a sub-requirement that must also pass.
type RequirementBuilder struct {
	requirements []Requirement
}

// NewRequirement starts building a composite requirement.
func NewRequirement() *RequirementBuilder {
	return &RequirementBuilder{}
}

// RequireRole adds a role requirement: the principal must hold at least one
// of the given roles.
func (b *RequirementBuilder) RequireRole(roles ...string) *RequirementBuilder {
	b.requirements = append(b.requirements, RoleRequirement{Roles: roles})
	return b
}

// RequireClaim adds a claim requirement: the principal must hold a claim of
// claimType with one of the given values.
func (b *RequirementBuilder) RequireClaim(claimType string, values ...string) *RequirementBuilder {
	b.requirements = append(b.requirements, ClaimRequirement{Type: claimType, AllowedValues: values})
	return b
}

// Build returns the assembled requirement. A single sub-requirement is
// returned directly; multiple ones are wrapped in a conjunction.
func (b *RequirementBuilder) Build() Requirement {
	if len(b.requirements) == 1 {
		return b.requirements[0]
	}
	return CompositeRequirement{Requirements: b.requirements}
}
