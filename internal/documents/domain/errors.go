package domain

import (
	"github.com/allisson/docguard/internal/errors"
)

// Document errors.
var (
	// ErrDocumentNotFound indicates a document with the specified ID was not found.
	ErrDocumentNotFound = errors.Wrap(errors.ErrNotFound, "document not found")
)
