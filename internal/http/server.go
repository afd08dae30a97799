package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/docguard/internal/auth/http"
	authUseCase "github.com/allisson/docguard/internal/auth/usecase"
	"github.com/allisson/docguard/internal/config"
	documentsHTTP "github.com/allisson/docguard/internal/documents/http"
	"github.com/allisson/docguard/internal/metrics"
)

// Server is the API HTTP server. Routes are registered at construction time;
// the login endpoint is rate limited per IP and everything under the
// authenticated group requires a valid bearer token.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server with all routes registered.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	tokenUseCase authUseCase.TokenUseCase,
	tokenHandler *authHTTP.TokenHandler,
	documentHandler *documentsHTTP.DocumentHandler,
	metricsProvider *metrics.Provider,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", HealthHandler)

	v1 := router.Group("/v1")

	// Login endpoint, unauthenticated, IP rate limited.
	tokenRoutes := v1.Group("/token")
	if cfg.RateLimitTokenEnabled {
		tokenRoutes.Use(authHTTP.TokenRateLimitMiddleware(
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			logger,
		))
	}
	tokenRoutes.POST("", tokenHandler.LoginHandler)

	// Everything below requires a valid bearer token.
	authenticated := v1.Group("")
	authenticated.Use(authHTTP.AuthenticationMiddleware(tokenUseCase, logger))
	if cfg.RateLimitEnabled {
		authenticated.Use(authHTTP.RateLimitMiddleware(
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			logger,
		))
	}

	authenticated.GET("/me", tokenHandler.MeHandler)

	authenticated.GET("/documents", documentHandler.ListHandler)
	authenticated.POST("/documents", documentHandler.CreateHandler)
	authenticated.GET("/documents/:id", documentHandler.GetHandler)
	authenticated.PUT("/documents/:id", documentHandler.UpdateHandler)
	authenticated.DELETE("/documents/:id", documentHandler.DeleteHandler)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
