package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	authService "github.com/allisson/docguard/internal/auth/service"
	authUseCase "github.com/allisson/docguard/internal/auth/usecase"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	apperrors "github.com/allisson/docguard/internal/errors"
)

// documentUseCase implements DocumentUseCase. Every operation consults the
// authorization façade before touching the repository; a denied decision
// surfaces as ErrForbidden at this boundary.
type documentUseCase struct {
	repository    DocumentRepository
	authorization authUseCase.AuthorizationUseCase
	logger        *slog.Logger
}

// List returns the documents visible to the principal.
func (d *documentUseCase) List(
	ctx context.Context,
	principal *authDomain.Principal,
) ([]*documentsDomain.Document, error) {
	if principal == nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "no principal")
	}

	documents, err := d.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*documentsDomain.Document, 0, len(documents))
	for _, document := range documents {
		if d.authorization.CanView(principal, document) {
			visible = append(visible, document)
		}
	}

	return visible, nil
}

// Get returns a single document, gated by the read resource check.
func (d *documentUseCase) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
) (*documentsDomain.Document, error) {
	document, err := d.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := d.authorization.CheckResource(ctx, principal, authDomain.OperationRead, document)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, decision.Reason)
	}

	return document, nil
}

// Create stores a new document scoped to the creator. Any authenticated user
// with a role may create; the normalization step forces the department and
// owner from the creator's claims and strips the manager-only flag for
// non-managers.
func (d *documentUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *documentsDomain.CreateDocumentInput,
) (*documentsDomain.Document, error) {
	if principal == nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "no principal")
	}
	if !principal.HasRole(authDomain.RoleStaff) && !principal.HasRole(authDomain.RoleManager) {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "no_role")
	}

	document := &documentsDomain.Document{
		Content:     input.Content,
		ManagerOnly: input.ManagerOnly,
	}
	document.NormalizeForCreate(principal)

	if err := d.repository.Create(ctx, document); err != nil {
		return nil, err
	}

	d.logger.Info("document created",
		slog.Int64("document_id", document.ID),
		slog.String("owner", document.Owner),
		slog.String("department", document.Department))

	return document, nil
}

// Update modifies a document, gated by the update resource check. The
// manager-only flag goes through the same normalization as create, so a
// non-manager owner cannot escalate a document to manager-only.
func (d *documentUseCase) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
	input *documentsDomain.UpdateDocumentInput,
) (*documentsDomain.Document, error) {
	document, err := d.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := d.authorization.CheckResource(ctx, principal, authDomain.OperationUpdate, document)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, decision.Reason)
	}

	document.Content = input.Content
	document.ManagerOnly = input.ManagerOnly
	if !principal.HasRole(authDomain.RoleManager) {
		document.ManagerOnly = false
	}

	if err := d.repository.Update(ctx, document); err != nil {
		return nil, err
	}

	d.logger.Info("document updated",
		slog.Int64("document_id", document.ID),
		slog.String("subject", principal.Subject()))

	return document, nil
}

// Delete removes a document. Deletion is the most privileged operation and
// is gated by the ITManagerOnly declarative policy rather than a per-document
// rule.
func (d *documentUseCase) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
) error {
	if _, err := d.repository.Get(ctx, id); err != nil {
		return err
	}

	decision, err := d.authorization.CheckPolicy(ctx, principal, authService.PolicyITManagerOnly)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return apperrors.Wrap(apperrors.ErrForbidden, decision.Reason)
	}

	if err := d.repository.Delete(ctx, id); err != nil {
		return err
	}

	d.logger.Info("document deleted",
		slog.Int64("document_id", id),
		slog.String("subject", principal.Subject()))

	return nil
}

// NewDocumentUseCase creates the document use case.
func NewDocumentUseCase(
	repository DocumentRepository,
	authorization authUseCase.AuthorizationUseCase,
	logger *slog.Logger,
) DocumentUseCase {
	return &documentUseCase{
		repository:    repository,
		authorization: authorization,
		logger:        logger,
	}
}
