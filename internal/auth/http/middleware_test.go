package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	httpMocks "github.com/allisson/docguard/internal/auth/http/mocks"
)

// setupMiddlewareRouter builds a router with the authentication middleware
// and a probe endpoint that echoes the principal's subject.
func setupMiddlewareRouter(t *testing.T, mockTokenUseCase *httpMocks.MockTokenUseCase) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.GET("/protected",
		AuthenticationMiddleware(mockTokenUseCase, logger),
		func(c *gin.Context) {
			principal, ok := GetPrincipal(c.Request.Context())
			if !ok {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"subject": principal.Subject()})
		})

	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("Success_ValidBearerToken", func(t *testing.T) {
		mockTokenUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(t, mockTokenUseCase)

		principal := authDomain.NewPrincipal(authDomain.NewClaimSet(
			authDomain.Claim{Type: authDomain.ClaimTypeSubject, Value: "jdoe"},
		))
		mockTokenUseCase.On("Authenticate", mock.Anything, "valid-token").
			Return(principal, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jdoe")
		mockTokenUseCase.AssertExpectations(t)
	})

	t.Run("Success_CaseInsensitiveBearerPrefix", func(t *testing.T) {
		mockTokenUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(t, mockTokenUseCase)

		principal := authDomain.NewPrincipal(authDomain.NewClaimSet(
			authDomain.Claim{Type: authDomain.ClaimTypeSubject, Value: "jdoe"},
		))
		mockTokenUseCase.On("Authenticate", mock.Anything, "valid-token").
			Return(principal, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer valid-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_MissingAuthorizationHeader", func(t *testing.T) {
		mockTokenUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(t, mockTokenUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockTokenUseCase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("Error_MalformedAuthorizationHeader", func(t *testing.T) {
		mockTokenUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(t, mockTokenUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_EmptyBearerToken", func(t *testing.T) {
		mockTokenUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(t, mockTokenUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer ")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_InvalidToken", func(t *testing.T) {
		mockTokenUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(t, mockTokenUseCase)

		mockTokenUseCase.On("Authenticate", mock.Anything, "expired-token").
			Return(nil, authDomain.ErrTokenExpired).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockTokenUseCase.AssertExpectations(t)
	})
}

func TestPrincipalContext(t *testing.T) {
	t.Run("Success_RoundTrip", func(t *testing.T) {
		principal := authDomain.NewPrincipal(authDomain.NewClaimSet(
			authDomain.Claim{Type: authDomain.ClaimTypeSubject, Value: "jdoe"},
		))

		ctx := WithPrincipal(t.Context(), principal)
		got, ok := GetPrincipal(ctx)

		assert.True(t, ok)
		assert.Equal(t, principal, got)
	})

	t.Run("Success_MissingPrincipal", func(t *testing.T) {
		got, ok := GetPrincipal(t.Context())

		assert.False(t, ok)
		assert.Nil(t, got)
	})
}
