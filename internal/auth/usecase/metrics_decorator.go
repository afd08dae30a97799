package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	"github.com/allisson/docguard/internal/metrics"
)

// authorizationUseCaseWithMetrics decorates AuthorizationUseCase with metrics
// instrumentation. Decisions are labeled allow/deny/error so dashboards can
// separate denials from malfunctions.
type authorizationUseCaseWithMetrics struct {
	next    AuthorizationUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthorizationUseCaseWithMetrics wraps an AuthorizationUseCase with metrics recording.
func NewAuthorizationUseCaseWithMetrics(
	useCase AuthorizationUseCase,
	m metrics.BusinessMetrics,
) AuthorizationUseCase {
	return &authorizationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CheckPolicy records metrics for declarative policy checks.
func (a *authorizationUseCaseWithMetrics) CheckPolicy(
	ctx context.Context,
	principal *authDomain.Principal,
	policyName string,
) (authDomain.Decision, error) {
	start := time.Now()
	decision, err := a.next.CheckPolicy(ctx, principal, policyName)

	status := decisionStatus(decision, err)
	a.metrics.RecordOperation(ctx, "auth", "check_policy", status)
	a.metrics.RecordDuration(ctx, "auth", "check_policy", time.Since(start), status)

	return decision, err
}

// CheckResource records metrics for per-instance resource checks.
func (a *authorizationUseCaseWithMetrics) CheckResource(
	ctx context.Context,
	principal *authDomain.Principal,
	operation authDomain.Operation,
	document *documentsDomain.Document,
) (authDomain.Decision, error) {
	start := time.Now()
	decision, err := a.next.CheckResource(ctx, principal, operation, document)

	status := decisionStatus(decision, err)
	a.metrics.RecordOperation(ctx, "auth", "check_resource", status)
	a.metrics.RecordDuration(ctx, "auth", "check_resource", time.Since(start), status)

	return decision, err
}

// CanView delegates without instrumentation: it is called per document on
// list paths and would dominate the operation counters.
func (a *authorizationUseCaseWithMetrics) CanView(
	principal *authDomain.Principal,
	document *documentsDomain.Document,
) bool {
	return a.next.CanView(principal, document)
}

// decisionStatus maps a check outcome to a metrics status label.
func decisionStatus(decision authDomain.Decision, err error) string {
	switch {
	case err != nil:
		return "error"
	case decision.Allowed:
		return "allow"
	default:
		return "deny"
	}
}
