package app

import (
	identityRepository "github.com/allisson/docguard/internal/identity/repository"
	identityService "github.com/allisson/docguard/internal/identity/service"
	identityUseCase "github.com/allisson/docguard/internal/identity/usecase"
)

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() identityUseCase.UserRepository {
	c.userRepoInit.Do(func() {
		c.userRepo = identityRepository.NewMemoryUserRepository()
	})
	return c.userRepo
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() identityService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = identityService.NewPasswordService()
	})
	return c.passwordService
}

// IdentityUseCase returns the identity use case instance.
func (c *Container) IdentityUseCase() (identityUseCase.IdentityUseCase, error) {
	c.identityUseCaseInit.Do(func() {
		c.identityUseCase = identityUseCase.NewIdentityUseCase(
			c.UserRepository(),
			c.PasswordService(),
		)
	})
	return c.identityUseCase, nil
}
