// Package http provides HTTP handlers for document operations. Every handler
// resolves the request principal from the context and delegates authorization
// to the document use case.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/docguard/internal/auth/http"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	"github.com/allisson/docguard/internal/documents/http/dto"
	documentsUseCase "github.com/allisson/docguard/internal/documents/usecase"
	apperrors "github.com/allisson/docguard/internal/errors"
	"github.com/allisson/docguard/internal/httputil"
	customValidation "github.com/allisson/docguard/internal/validation"
)

// DocumentHandler handles HTTP requests for document operations.
type DocumentHandler struct {
	documentUseCase documentsUseCase.DocumentUseCase
	logger          *slog.Logger
}

// NewDocumentHandler creates a new document handler with required dependencies.
func NewDocumentHandler(
	documentUseCase documentsUseCase.DocumentUseCase,
	logger *slog.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: documentUseCase,
		logger:          logger,
	}
}

// ListHandler returns the documents visible to the caller.
// GET /v1/documents?offset=0&limit=50 - Requires authentication.
// Returns 200 OK with the visible documents ordered by id. Pagination is
// applied after visibility filtering so page boundaries never leak hidden
// documents.
func (h *DocumentHandler) ListHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	documents, err := h.documentUseCase.List(c.Request.Context(), principal)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDocumentsToListResponse(paginate(documents, offset, limit)))
}

// paginate applies offset/limit to the visible documents.
func paginate(documents []*documentsDomain.Document, offset, limit int) []*documentsDomain.Document {
	if offset >= len(documents) {
		return nil
	}
	end := offset + limit
	if end > len(documents) {
		end = len(documents)
	}
	return documents[offset:end]
}

// GetHandler returns a single document.
// GET /v1/documents/:id - Requires authentication and read visibility.
// Returns 200 OK with the document, 403 if not visible, 404 if absent.
func (h *DocumentHandler) GetHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	document, err := h.documentUseCase.Get(c.Request.Context(), principal, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDocumentToResponse(document))
}

// CreateHandler creates a new document scoped to the caller.
// POST /v1/documents - Requires authentication and the Staff or Manager role.
// Returns 201 Created with the stored document.
func (h *DocumentHandler) CreateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateDocumentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &documentsDomain.CreateDocumentInput{
		Content:     req.Content,
		ManagerOnly: req.ManagerOnly,
	}

	document, err := h.documentUseCase.Create(c.Request.Context(), principal, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapDocumentToResponse(document))
}

// UpdateHandler modifies an existing document.
// PUT /v1/documents/:id - Requires authentication and ownership or a
// same-department manager role.
// Returns 200 OK with the updated document.
func (h *DocumentHandler) UpdateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateDocumentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &documentsDomain.UpdateDocumentInput{
		Content:     req.Content,
		ManagerOnly: req.ManagerOnly,
	}

	document, err := h.documentUseCase.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDocumentToResponse(document))
}

// DeleteHandler removes a document.
// DELETE /v1/documents/:id - Requires authentication and the ITManagerOnly policy.
// Returns 204 No Content on success.
func (h *DocumentHandler) DeleteHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.documentUseCase.Delete(c.Request.Context(), principal, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseDocumentID extracts and validates the document id path parameter.
func parseDocumentID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid document id: must be a positive integer")
	}
	return id, nil
}
