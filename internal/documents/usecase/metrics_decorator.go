package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	"github.com/allisson/docguard/internal/metrics"
)

// documentUseCaseWithMetrics decorates DocumentUseCase with metrics
// instrumentation.
type documentUseCaseWithMetrics struct {
	next    DocumentUseCase
	metrics metrics.BusinessMetrics
}

// NewDocumentUseCaseWithMetrics wraps a DocumentUseCase with metrics recording.
func NewDocumentUseCaseWithMetrics(
	useCase DocumentUseCase,
	m metrics.BusinessMetrics,
) DocumentUseCase {
	return &documentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// List records metrics for document listing.
func (d *documentUseCaseWithMetrics) List(
	ctx context.Context,
	principal *authDomain.Principal,
) ([]*documentsDomain.Document, error) {
	start := time.Now()
	documents, err := d.next.List(ctx, principal)

	status := operationStatus(err)
	d.metrics.RecordOperation(ctx, "documents", "list", status)
	d.metrics.RecordDuration(ctx, "documents", "list", time.Since(start), status)

	return documents, err
}

// Get records metrics for document retrieval.
func (d *documentUseCaseWithMetrics) Get(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
) (*documentsDomain.Document, error) {
	start := time.Now()
	document, err := d.next.Get(ctx, principal, id)

	status := operationStatus(err)
	d.metrics.RecordOperation(ctx, "documents", "get", status)
	d.metrics.RecordDuration(ctx, "documents", "get", time.Since(start), status)

	return document, err
}

// Create records metrics for document creation.
func (d *documentUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input *documentsDomain.CreateDocumentInput,
) (*documentsDomain.Document, error) {
	start := time.Now()
	document, err := d.next.Create(ctx, principal, input)

	status := operationStatus(err)
	d.metrics.RecordOperation(ctx, "documents", "create", status)
	d.metrics.RecordDuration(ctx, "documents", "create", time.Since(start), status)

	return document, err
}

// Update records metrics for document updates.
func (d *documentUseCaseWithMetrics) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
	input *documentsDomain.UpdateDocumentInput,
) (*documentsDomain.Document, error) {
	start := time.Now()
	document, err := d.next.Update(ctx, principal, id, input)

	status := operationStatus(err)
	d.metrics.RecordOperation(ctx, "documents", "update", status)
	d.metrics.RecordDuration(ctx, "documents", "update", time.Since(start), status)

	return document, err
}

// Delete records metrics for document deletion.
func (d *documentUseCaseWithMetrics) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	id int64,
) error {
	start := time.Now()
	err := d.next.Delete(ctx, principal, id)

	status := operationStatus(err)
	d.metrics.RecordOperation(ctx, "documents", "delete", status)
	d.metrics.RecordDuration(ctx, "documents", "delete", time.Since(start), status)

	return err
}

// operationStatus maps an operation outcome to a metrics status label.
func operationStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
