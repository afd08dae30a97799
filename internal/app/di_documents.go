package app

import (
	"fmt"

	documentsRepository "github.com/allisson/docguard/internal/documents/repository"
	documentsUseCase "github.com/allisson/docguard/internal/documents/usecase"
)

// DocumentRepository returns the document repository instance.
func (c *Container) DocumentRepository() documentsUseCase.DocumentRepository {
	c.documentRepoInit.Do(func() {
		c.documentRepo = documentsRepository.NewMemoryDocumentRepository()
	})
	return c.documentRepo
}

// DocumentUseCase returns the document use case, instrumented with business
// metrics.
func (c *Container) DocumentUseCase() (documentsUseCase.DocumentUseCase, error) {
	c.documentUseCaseInit.Do(func() {
		authorization, err := c.AuthorizationUseCase()
		if err != nil {
			c.initErrors["documentUseCase"] = fmt.Errorf("failed to get authorization use case for document use case: %w", err)
			return
		}

		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["documentUseCase"] = fmt.Errorf("failed to get business metrics for document use case: %w", err)
			return
		}

		useCase := documentsUseCase.NewDocumentUseCase(
			c.DocumentRepository(),
			authorization,
			c.Logger(),
		)
		c.documentUseCase = documentsUseCase.NewDocumentUseCaseWithMetrics(useCase, bm)
	})
	if storedErr, exists := c.initErrors["documentUseCase"]; exists {
		return nil, storedErr
	}
	return c.documentUseCase, nil
}
