// Package repository provides the in-memory document store.
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	documentsUseCase "github.com/allisson/docguard/internal/documents/usecase"
)

// memoryDocumentRepository implements DocumentRepository with an in-process
// map. Mutation is serialized by a single writer lock and ids come from a
// monotonic counter, so concurrent Create calls can never produce duplicate
// ids.
type memoryDocumentRepository struct {
	mu        sync.RWMutex
	documents map[int64]*documentsDomain.Document
	nextID    int64
}

// NewMemoryDocumentRepository creates an empty in-memory document repository.
func NewMemoryDocumentRepository() documentsUseCase.DocumentRepository {
	return &memoryDocumentRepository{
		documents: make(map[int64]*documentsDomain.Document),
		nextID:    1,
	}
}

// Create stores a new document and assigns its id.
func (r *memoryDocumentRepository) Create(
	ctx context.Context,
	document *documentsDomain.Document,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	document.ID = r.nextID
	r.nextID++

	now := time.Now().UTC()
	document.CreatedAt = now
	document.UpdatedAt = now

	stored := *document
	r.documents[document.ID] = &stored
	return nil
}

// Get retrieves a document by id.
func (r *memoryDocumentRepository) Get(
	ctx context.Context,
	id int64,
) (*documentsDomain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	document, exists := r.documents[id]
	if !exists {
		return nil, documentsDomain.ErrDocumentNotFound
	}

	copied := *document
	return &copied, nil
}

// List returns all documents ordered by id.
func (r *memoryDocumentRepository) List(
	ctx context.Context,
) ([]*documentsDomain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	documents := make([]*documentsDomain.Document, 0, len(r.documents))
	for _, document := range r.documents {
		copied := *document
		documents = append(documents, &copied)
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].ID < documents[j].ID
	})

	return documents, nil
}

// Update modifies an existing document.
func (r *memoryDocumentRepository) Update(
	ctx context.Context,
	document *documentsDomain.Document,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.documents[document.ID]
	if !exists {
		return documentsDomain.ErrDocumentNotFound
	}

	document.CreatedAt = existing.CreatedAt
	document.UpdatedAt = time.Now().UTC()

	stored := *document
	r.documents[document.ID] = &stored
	return nil
}

// Delete removes a document by id.
func (r *memoryDocumentRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[id]; !exists {
		return documentsDomain.ErrDocumentNotFound
	}

	delete(r.documents, id)
	return nil
}
