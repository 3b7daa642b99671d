package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/author/service"
	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/metrics"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/logger"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.AuthorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	result, err := h.service.CreateAuthor(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author created", result)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/authors/:id, GET /v1/authors/:id/full
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	result, err := h.service.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author retrieved", result)
}

func (h *AuthorHandler) GetByIDWithBooks(c *gin.Context) {
	result, err := h.service.GetAuthorWithBooks(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author retrieved", result)
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/authors, GET /v1/authors/full
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	result, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Authors retrieved", result)
}

func (h *AuthorHandler) ListWithBooks(c *gin.Context) {
	result, err := h.service.ListAuthorsWithBooks(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Authors retrieved", result)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	var req model.AuthorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	result, err := h.service.UpdateAuthor(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author updated", result)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteAuthor(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author deleted", nil)
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	statusCode, message, code := model.MapErrorToHTTP(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error("author request failed", err)
	}
	metrics.IncDomainError(code)
	_ = c.Error(err)
	response.Error(c, statusCode, message, code)
}
