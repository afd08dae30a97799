// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// CreateDocumentRequest contains the caller-supplied fields for a new
// document. The department and owner are derived from the caller's claims
// and are not accepted here.
type CreateDocumentRequest struct {
	Content     string `json:"content" binding:"required"`
	ManagerOnly bool   `json:"manager_only"`
}

// Validate checks if the create document request is valid.
func (r *CreateDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required,
			validation.Length(1, 65536),
		),
	)
}

// UpdateDocumentRequest contains the mutable fields of an existing document.
type UpdateDocumentRequest struct {
	Content     string `json:"content" binding:"required"`
	ManagerOnly bool   `json:"manager_only"`
}

// Validate checks if the update document request is valid.
func (r *UpdateDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required,
			validation.Length(1, 65536),
		),
	)
}
