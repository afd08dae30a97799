package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	"github.com/allisson/docguard/internal/auth/http/dto"
	httpMocks "github.com/allisson/docguard/internal/auth/http/mocks"
)

// createTestContext creates a gin test context with an optional JSON body.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// setupTokenTestHandler creates a test token handler with mocked dependencies.
func setupTokenTestHandler(t *testing.T) (*TokenHandler, *httpMocks.MockTokenUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockTokenUseCase := &httpMocks.MockTokenUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewTokenHandler(mockTokenUseCase, logger)

	return handler, mockTokenUseCase
}

func TestTokenHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		expiresAt := time.Now().UTC().Add(time.Hour)
		request := dto.LoginRequest{UserName: "jdoe", Password: "secret"}

		mockUseCase.On("Login", mock.Anything, "jdoe", "secret").
			Return(&authDomain.LoginOutput{Token: "signed-token", ExpiresAt: expiresAt}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/token", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "signed-token", response.Token)
		assert.Equal(t, expiresAt.Unix(), response.ExpiresAt.Unix())

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/token", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidUserName", func(t *testing.T) {
		handler, _ := setupTokenTestHandler(t)

		request := dto.LoginRequest{UserName: "With Spaces", Password: "secret"}
		c, w := createTestContext(http.MethodPost, "/v1/token", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.LoginRequest{UserName: "jdoe", Password: "wrong"}

		mockUseCase.On("Login", mock.Anything, "jdoe", "wrong").
			Return(nil, authDomain.ErrInvalidCredentials).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/token", request)

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}

func TestTokenHandler_MeHandler(t *testing.T) {
	t.Run("Success_PrincipalInContext", func(t *testing.T) {
		handler, _ := setupTokenTestHandler(t)

		principal := authDomain.NewPrincipal(authDomain.NewClaimSet(
			authDomain.Claim{Type: authDomain.ClaimTypeSubject, Value: "cwilliams"},
			authDomain.Claim{Type: authDomain.ClaimTypeDepartment, Value: "IT"},
			authDomain.Claim{Type: authDomain.ClaimTypeRole, Value: authDomain.RoleManager},
		))

		c, w := createTestContext(http.MethodGet, "/v1/me", nil)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.PrincipalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "cwilliams", response.Subject)
		assert.Equal(t, "IT", response.Department)
		assert.Equal(t, []string{authDomain.RoleManager}, response.Roles)
		assert.Len(t, response.Claims, 3)
	})

	t.Run("Error_NoPrincipal", func(t *testing.T) {
		handler, _ := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/me", nil)

		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
