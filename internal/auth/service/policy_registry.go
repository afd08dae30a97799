package service

import (
	"sort"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	apperrors "github.com/allisson/docguard/internal/errors"
)

// Names of the policies registered at startup.
const (
	// PolicyITManagerOnly requires the IT department claim and the Manager role.
	// Gates document deletion.
	PolicyITManagerOnly = "ITManagerOnly"

	// PolicySalesAndITOnly requires a Sales or IT department claim and a
	// Staff or Manager role.
	PolicySalesAndITOnly = "SalesAndITOnly"
)

// policyRegistry implements PolicyRegistry with a plain map.
//
// Concurrency discipline is write-once-then-read-many: Register is called
// only during startup configuration, before any request-handling path can
// reach Evaluate, so no locking is needed.
type policyRegistry struct {
	policies map[string]authDomain.Requirement
}

// NewPolicyRegistry creates an empty policy registry.
func NewPolicyRegistry() PolicyRegistry {
	return &policyRegistry{
		policies: make(map[string]authDomain.Requirement),
	}
}

// Register adds a named policy. Duplicate names and empty registrations are
// configuration errors and fail loudly.
func (r *policyRegistry) Register(name string, requirement authDomain.Requirement) error {
	if name == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "policy name cannot be empty")
	}
	if requirement == nil {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "policy %q has no requirement", name)
	}
	if _, exists := r.policies[name]; exists {
		return apperrors.Wrapf(authDomain.ErrDuplicatePolicy, "policy %q", name)
	}

	r.policies[name] = requirement
	return nil
}

// Evaluate checks the named policy against the claims.
func (r *policyRegistry) Evaluate(
	name string,
	claims authDomain.ClaimSet,
) (authDomain.Decision, error) {
	requirement, exists := r.policies[name]
	if !exists {
		return authDomain.Deny("unknown_policy"), apperrors.Wrapf(authDomain.ErrUnknownPolicy, "policy %q", name)
	}

	if !requirement.Satisfied(claims) {
		return authDomain.Deny("policy_not_satisfied"), nil
	}

	return authDomain.Allow(), nil
}

// Names returns the registered policy names in lexical order.
func (r *policyRegistry) Names() []string {
	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterDefaultPolicies registers the built-in document policies. Called
// once from the startup wiring before the server accepts traffic.
func RegisterDefaultPolicies(registry PolicyRegistry) error {
	itManagerOnly := authDomain.NewRequirement().
		RequireClaim(authDomain.ClaimTypeDepartment, "IT").
		RequireRole(authDomain.RoleManager).
		Build()
	if err := registry.Register(PolicyITManagerOnly, itManagerOnly); err != nil {
		return err
	}

	salesAndITOnly := authDomain.NewRequirement().
		RequireClaim(authDomain.ClaimTypeDepartment, "Sales", "IT").
		RequireRole(authDomain.RoleStaff, authDomain.RoleManager).
		Build()
	if err := registry.Register(PolicySalesAndITOnly, salesAndITOnly); err != nil {
		return err
	}

	return nil
}
