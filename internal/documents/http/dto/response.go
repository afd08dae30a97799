// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
)

// DocumentResponse represents a document in API responses.
type DocumentResponse struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Department  string    `json:"department"`
	Owner       string    `json:"owner"`
	ManagerOnly bool      `json:"manager_only"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListDocumentsResponse wraps a collection of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Count     int                `json:"count"`
}

// MapDocumentToResponse converts a domain document to an API response.
func MapDocumentToResponse(document *documentsDomain.Document) DocumentResponse {
	return DocumentResponse{
		ID:          document.ID,
		Content:     document.Content,
		Department:  document.Department,
		Owner:       document.Owner,
		ManagerOnly: document.ManagerOnly,
		CreatedAt:   document.CreatedAt,
		UpdatedAt:   document.UpdatedAt,
	}
}

// MapDocumentsToListResponse converts domain documents to a list response.
func MapDocumentsToListResponse(documents []*documentsDomain.Document) ListDocumentsResponse {
	responses := make([]DocumentResponse, 0, len(documents))
	for _, document := range documents {
		responses = append(responses, MapDocumentToResponse(document))
	}

	return ListDocumentsResponse{
		Documents: responses,
		Count:     len(responses),
	}
}
