package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func claimsWith(department string, roles ...string) ClaimSet {
	claims := []Claim{{Type: ClaimTypeDepartment, Value: department}}
	for _, role := range roles {
		claims = append(claims, Claim{Type: ClaimTypeRole, Value: role})
	}
	return NewClaimSet(claims...)
}

func TestRoleRequirement(t *testing.T) {
	t.Run("Success_AnyListedRolePasses", func(t *testing.T) {
		requirement := RoleRequirement{Roles: []string{RoleStaff, RoleManager}}

		assert.True(t, requirement.Satisfied(claimsWith("IT", RoleStaff)))
		assert.True(t, requirement.Satisfied(claimsWith("IT", RoleManager)))
	})

	t.Run("Success_NoMatchingRoleFails", func(t *testing.T) {
		requirement := RoleRequirement{Roles: []string{RoleManager}}

		assert.False(t, requirement.Satisfied(claimsWith("IT", RoleStaff)))
		assert.False(t, requirement.Satisfied(claimsWith("IT")))
	})
}

func TestClaimRequirement(t *testing.T) {
	t.Run("Success_AnyAllowedValuePasses", func(t *testing.T) {
		requirement := ClaimRequirement{
			Type:          ClaimTypeDepartment,
			AllowedValues: []string{"Sales", "IT"},
		}

		assert.True(t, requirement.Satisfied(claimsWith("Sales")))
		assert.True(t, requirement.Satisfied(claimsWith("IT")))
	})

	t.Run("Success_ValueComparisonIsCaseSensitive", func(t *testing.T) {
		requirement := ClaimRequirement{
			Type:          ClaimTypeDepartment,
			AllowedValues: []string{"IT"},
		}

		assert.False(t, requirement.Satisfied(claimsWith("it")))
	})

	t.Run("Success_MissingClaimFails", func(t *testing.T) {
		requirement := ClaimRequirement{
			Type:          ClaimTypeEmail,
			AllowedValues: []string{"jdoe@example.com"},
		}

		assert.False(t, requirement.Satisfied(claimsWith("IT")))
	})
}

func TestCompositeRequirement(t *testing.T) {
	t.Run("Success_AllMustPass", func(t *testing.T) {
		requirement := CompositeRequirement{
			Requirements: []Requirement{
				ClaimRequirement{Type: ClaimTypeDepartment, AllowedValues: []string{"IT"}},
				RoleRequirement{Roles: []string{RoleManager}},
			},
		}

		assert.True(t, requirement.Satisfied(claimsWith("IT", RoleManager)))
		assert.False(t, requirement.Satisfied(claimsWith("IT", RoleStaff)))
		assert.False(t, requirement.Satisfied(claimsWith("Sales", RoleManager)))
	})

	t.Run("Success_EmptyCompositeIsVacuouslySatisfied", func(t *testing.T) {
		requirement := CompositeRequirement{}

		assert.True(t, requirement.Satisfied(NewClaimSet()))
	})
}

func TestRequirementBuilder(t *testing.T) {
	t.Run("Success_SingleRequirementReturnedDirectly", func(t *testing.T) {
		requirement := NewRequirement().
			RequireRole(RoleManager).
			Build()

		_, isRole := requirement.(RoleRequirement)
		assert.True(t, isRole)
	})

	t.Run("Success_MultipleRequirementsCombineWithAnd", func(t *testing.T) {
		requirement := NewRequirement().
			RequireClaim(ClaimTypeDepartment, "IT").
			RequireRole(RoleManager).
			Build()

		assert.True(t, requirement.Satisfied(claimsWith("IT", RoleManager)))
		assert.False(t, requirement.Satisfied(claimsWith("IT", RoleStaff)))
		assert.False(t, requirement.Satisfied(claimsWith("Sales", RoleManager)))
	})

	t.Run("Success_MultiRolePrincipalSatisfiesEitherBranch", func(t *testing.T) {
		requirement := NewRequirement().
			RequireRole(RoleStaff, RoleManager).
			Build()

		multiRole := claimsWith("Sales", RoleStaff, RoleManager)
		assert.True(t, requirement.Satisfied(multiRole))
	})
}
