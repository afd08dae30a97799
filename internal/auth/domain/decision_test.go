package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecision(t *testing.T) {
	t.Run("Success_Allow", func(t *testing.T) {
		decision := Allow()

		assert.True(t, decision.Allowed)
		assert.Equal(t, "", decision.Reason)
	})

	t.Run("Success_DenyCarriesReason", func(t *testing.T) {
		decision := Deny("department_mismatch")

		assert.False(t, decision.Allowed)
		assert.Equal(t, "department_mismatch", decision.Reason)
	})
}

func TestOperation_Valid(t *testing.T) {
	t.Run("Success_KnownOperations", func(t *testing.T) {
		assert.True(t, OperationCreate.Valid())
		assert.True(t, OperationRead.Valid())
		assert.True(t, OperationUpdate.Valid())
		assert.True(t, OperationDelete.Valid())
	})

	t.Run("Success_UnknownOperation", func(t *testing.T) {
		assert.False(t, Operation("archive").Valid())
		assert.False(t, Operation("").Valid())
	})
}
