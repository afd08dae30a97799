package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/docguard/internal/auth/http/dto"
	authUseCase "github.com/allisson/docguard/internal/auth/usecase"
	apperrors "github.com/allisson/docguard/internal/errors"
	"github.com/allisson/docguard/internal/httputil"
	customValidation "github.com/allisson/docguard/internal/validation"
)

// TokenHandler handles HTTP requests for token operations.
type TokenHandler struct {
	tokenUseCase authUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// LoginHandler authenticates a user and issues a bearer token.
// POST /v1/token - No authentication required (this is the authentication endpoint).
// Returns 201 Created with the token and its expiration time.
func (h *TokenHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.tokenUseCase.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	}

	c.JSON(http.StatusCreated, response)
}

// MeHandler returns the authenticated principal's claims.
// GET /v1/me - Requires authentication.
// Returns 200 OK with the subject, department, roles and the full claim set.
func (h *TokenHandler) MeHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPrincipalToResponse(principal))
}
