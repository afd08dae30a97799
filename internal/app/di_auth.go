package app

import (
	"fmt"

	authService "github.com/allisson/docguard/internal/auth/service"
	authUseCase "github.com/allisson/docguard/internal/auth/usecase"
)

// TokenCodec returns the bearer token codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		codec, err := authService.NewTokenCodec(c.config)
		if err != nil {
			c.initErrors["tokenCodec"] = err
			return
		}
		c.tokenCodec = codec
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// PolicyRegistry returns the policy registry with the built-in policies
// registered. Registration happens once, before the registry is handed out,
// so later reads need no locking.
func (c *Container) PolicyRegistry() (authService.PolicyRegistry, error) {
	c.policyRegistryInit.Do(func() {
		registry := authService.NewPolicyRegistry()
		if err := authService.RegisterDefaultPolicies(registry); err != nil {
			c.initErrors["policyRegistry"] = err
			return
		}
		c.policyRegistry = registry
	})
	if storedErr, exists := c.initErrors["policyRegistry"]; exists {
		return nil, storedErr
	}
	return c.policyRegistry, nil
}

// DocumentAuthorizer returns the per-document authorizer.
func (c *Container) DocumentAuthorizer() authService.DocumentAuthorizer {
	c.documentAuthorizerInit.Do(func() {
		c.documentAuthorizer = authService.NewDocumentAuthorizer()
	})
	return c.documentAuthorizer
}

// TokenUseCase returns the token use case instance.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		codec, err := c.TokenCodec()
		if err != nil {
			c.initErrors["tokenUseCase"] = fmt.Errorf("failed to get token codec for token use case: %w", err)
			return
		}

		identity, err := c.IdentityUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = fmt.Errorf("failed to get identity use case for token use case: %w", err)
			return
		}

		c.tokenUseCase = authUseCase.NewTokenUseCase(c.config, identity, codec)
	})
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// AuthorizationUseCase returns the authorization façade, instrumented with
// business metrics.
func (c *Container) AuthorizationUseCase() (authUseCase.AuthorizationUseCase, error) {
	c.authorizationUseCaseInit.Do(func() {
		registry, err := c.PolicyRegistry()
		if err != nil {
			c.initErrors["authorizationUseCase"] = fmt.Errorf("failed to get policy registry for authorization use case: %w", err)
			return
		}

		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["authorizationUseCase"] = fmt.Errorf("failed to get business metrics for authorization use case: %w", err)
			return
		}

		useCase := authUseCase.NewAuthorizationUseCase(registry, c.DocumentAuthorizer(), c.Logger())
		c.authorizationUseCase = authUseCase.NewAuthorizationUseCaseWithMetrics(useCase, bm)
	})
	if storedErr, exists := c.initErrors["authorizationUseCase"]; exists {
		return nil, storedErr
	}
	return c.authorizationUseCase, nil
}
