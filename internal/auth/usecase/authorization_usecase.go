package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	authService "github.com/allisson/docguard/internal/auth/service"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	apperrors "github.com/allisson/docguard/internal/errors"
)

// authorizationUseCase implements AuthorizationUseCase by delegating to the
// policy registry and the document authorizer. Both tiers are pure reads of
// their inputs, so the façade is safe for unlocked concurrent use once the
// registry is populated.
type authorizationUseCase struct {
	registry   authService.PolicyRegistry
	authorizer authService.DocumentAuthorizer
	logger     *slog.Logger
}

// CheckPolicy evaluates the named declarative policy against the principal's
// claims. Configuration errors (unknown policy) are logged and returned with
// a Deny decision: a misconfigured check must never allow.
func (a *authorizationUseCase) CheckPolicy(
	ctx context.Context,
	principal *authDomain.Principal,
	policyName string,
) (authDomain.Decision, error) {
	if principal == nil {
		return authDomain.Deny("no_principal"), apperrors.Wrap(apperrors.ErrUnauthorized, "no principal")
	}

	decision, err := a.registry.Evaluate(policyName, principal.Claims)
	if err != nil {
		a.logger.Error("policy evaluation failed",
			slog.String("policy", policyName),
			slog.Any("error", err))
		return authDomain.Deny("evaluation_error"), err
	}

	a.logger.Debug("policy evaluated",
		slog.String("policy", policyName),
		slog.String("subject", principal.Subject()),
		slog.Bool("allowed", decision.Allowed),
		slog.String("reason", decision.Reason))

	return decision, nil
}

// CheckResource evaluates the per-instance rule for the operation on the
// document. Unsupported operations are logged and returned with a Deny
// decision so failures never grant access.
func (a *authorizationUseCase) CheckResource(
	ctx context.Context,
	principal *authDomain.Principal,
	operation authDomain.Operation,
	document *documentsDomain.Document,
) (authDomain.Decision, error) {
	decision, err := a.authorizer.Authorize(principal, operation, document)
	if err != nil {
		a.logger.Error("resource authorization failed",
			slog.String("operation", string(operation)),
			slog.Any("error", err))
		return authDomain.Deny("evaluation_error"), err
	}

	a.logger.Debug("resource authorized",
		slog.String("operation", string(operation)),
		slog.String("subject", principal.Subject()),
		slog.Int64("document_id", document.ID),
		slog.Bool("allowed", decision.Allowed),
		slog.String("reason", decision.Reason))

	return decision, nil
}

// CanView reports list/read visibility of the document for the principal.
func (a *authorizationUseCase) CanView(
	principal *authDomain.Principal,
	document *documentsDomain.Document,
) bool {
	return a.authorizer.CanView(principal, document)
}

// NewAuthorizationUseCase creates the authorization façade.
func NewAuthorizationUseCase(
	registry authService.PolicyRegistry,
	authorizer authService.DocumentAuthorizer,
	logger *slog.Logger,
) AuthorizationUseCase {
	return &authorizationUseCase{
		registry:   registry,
		authorizer: authorizer,
		logger:     logger,
	}
}
