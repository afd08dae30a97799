// Package usecase implements business logic for the document CRUD surface,
// gated by the authorization façade.
package usecase

import (
	"context"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
)

// DocumentRepository defines persistence operations for documents.
// Implementations must serialize mutation and assign unique, monotonic ids
// across concurrent Create calls.
type DocumentRepository interface {
	// Create stores a new document and assigns its id.
	Create(ctx context.Context, document *documentsDomain.Document) error

	// Get retrieves a document by id. Returns ErrDocumentNotFound if not found.
	Get(ctx context.Context, id int64) (*documentsDomain.Document, error)

	// List returns all documents ordered by id.
	List(ctx context.Context) ([]*documentsDomain.Document, error)

	// Update modifies an existing document. Returns ErrDocumentNotFound if not found.
	Update(ctx context.Context, document *documentsDomain.Document) error

	// Delete removes a document by id. Returns ErrDocumentNotFound if not found.
	Delete(ctx context.Context, id int64) error
}

// DocumentUseCase defines the authorized document operations. Every
// operation takes the request principal; authorization happens here, not in
// the HTTP layer.
type DocumentUseCase interface {
	// List returns the documents visible to the principal (department match
	// or the "All" sentinel, manager-only documents for managers only).
	List(ctx context.Context, principal *authDomain.Principal) ([]*documentsDomain.Document, error)

	// Get returns a single document, gated by the read resource check.
	Get(
		ctx context.Context,
		principal *authDomain.Principal,
		id int64,
	) (*documentsDomain.Document, error)

	// Create stores a new document scoped to the creator: the department is
	// forced to the creator's department claim and the manager-only flag is
	// stripped for non-managers.
	Create(
		ctx context.Context,
		principal *authDomain.Principal,
		input *documentsDomain.CreateDocumentInput,
	) (*documentsDomain.Document, error)

	// Update modifies a document, gated by the update resource check
	// (ownership or same-department manager).
	Update(
		ctx context.Context,
		principal *authDomain.Principal,
		id int64,
		input *documentsDomain.UpdateDocumentInput,
	) (*documentsDomain.Document, error)

	// Delete removes a document, gated by the ITManagerOnly policy.
	Delete(ctx context.Context, principal *authDomain.Principal, id int64) error
}
