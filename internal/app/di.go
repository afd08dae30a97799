// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authHTTP "github.com/allisson/docguard/internal/auth/http"
	authService "github.com/allisson/docguard/internal/auth/service"
	authUseCase "github.com/allisson/docguard/internal/auth/usecase"
	"github.com/allisson/docguard/internal/config"
	documentsHTTP "github.com/allisson/docguard/internal/documents/http"
	documentsUseCase "github.com/allisson/docguard/internal/documents/usecase"
	"github.com/allisson/docguard/internal/http"
	identityService "github.com/allisson/docguard/internal/identity/service"
	identityUseCase "github.com/allisson/docguard/internal/identity/usecase"
	"github.com/allisson/docguard/internal/metrics"
)

// Container holds all application dependencies and provides methods to access
// them. It follows the lazy initialization pattern - components are created on
// first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Auth
	tokenCodec           authService.TokenCodec
	policyRegistry       authService.PolicyRegistry
	documentAuthorizer   authService.DocumentAuthorizer
	tokenUseCase         authUseCase.TokenUseCase
	authorizationUseCase authUseCase.AuthorizationUseCase

	// Identity
	userRepo        identityUseCase.UserRepository
	passwordService identityService.PasswordService
	identityUseCase identityUseCase.IdentityUseCase

	// Documents
	documentRepo    documentsUseCase.DocumentRepository
	documentUseCase documentsUseCase.DocumentUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags for thread-safety
	loggerInit               sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	tokenCodecInit           sync.Once
	policyRegistryInit       sync.Once
	documentAuthorizerInit   sync.Once
	tokenUseCaseInit         sync.Once
	authorizationUseCaseInit sync.Once
	userRepoInit             sync.Once
	passwordServiceInit      sync.Once
	identityUseCaseInit      sync.Once
	documentRepoInit         sync.Once
	documentUseCaseInit      sync.Once
	httpServerInit           sync.Once
	metricsServerInit        sync.Once
	initErrors               map[string]error
}

// NewContainer creates a new dependency injection container with the provided
// configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled a no-op recorder is returned so decorators stay wired.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are
// disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Close releases container resources.
func (c *Container) Close(ctx context.Context) error {
	var closeErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			closeErrors = append(closeErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(closeErrors) > 0 {
		return fmt.Errorf("close errors: %v", closeErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initHTTPServer creates the API server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for http server: %w", err)
	}

	documentUseCase, err := c.DocumentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get document use case for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	tokenHandler := authHTTP.NewTokenHandler(tokenUseCase, logger)
	documentHandler := documentsHTTP.NewDocumentHandler(documentUseCase, logger)

	return http.NewServer(
		c.config,
		logger,
		tokenUseCase,
		tokenHandler,
		documentHandler,
		provider,
	), nil
}
