package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/v1/documents"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	t.Run("Success_Defaults", func(t *testing.T) {
		c := makeTestContext(t, "")

		offset, limit, err := ParsePagination(c)

		require.NoError(t, err)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 50, limit)
	})

	t.Run("Success_CustomValues", func(t *testing.T) {
		c := makeTestContext(t, "?offset=10&limit=25")

		offset, limit, err := ParsePagination(c)

		require.NoError(t, err)
		assert.Equal(t, 10, offset)
		assert.Equal(t, 25, limit)
	})

	t.Run("Error_NegativeOffset", func(t *testing.T) {
		c := makeTestContext(t, "?offset=-1")

		_, _, err := ParsePagination(c)

		assert.Error(t, err)
	})

	t.Run("Error_NonNumericOffset", func(t *testing.T) {
		c := makeTestContext(t, "?offset=abc")

		_, _, err := ParsePagination(c)

		assert.Error(t, err)
	})

	t.Run("Error_LimitTooLarge", func(t *testing.T) {
		c := makeTestContext(t, "?limit=101")

		_, _, err := ParsePagination(c)

		assert.Error(t, err)
	})

	t.Run("Error_ZeroLimit", func(t *testing.T) {
		c := makeTestContext(t, "?limit=0")

		_, _, err := ParsePagination(c)

		assert.Error(t, err)
	})
}
