package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/book/service"
	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/metrics"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/logger"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{service: s}
}

// CreateBook godoc
// POST /v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Book created", book)
}

// GetBook godoc
// GET /v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.service.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved", book)
}

// GetBookWithAuthor godoc
// GET /v1/books/:id/full
func (h *Handler) GetBookWithAuthor(c *gin.Context) {
	book, err := h.service.GetBookWithAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved", book)
}

// ListBooks godoc
// GET /v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved", books)
}

// ListBooksWithAuthor godoc
// GET /v1/books/full
func (h *Handler) ListBooksWithAuthor(c *gin.Context) {
	books, err := h.service.ListBooksWithAuthor(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved", books)
}

// UpdateBook godoc
// PUT /v1/books/:id
// The payload has the create shape; authorId is accepted but ignored.
func (h *Handler) UpdateBook(c *gin.Context) {
	var req model.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := req.BookRequest.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), &req.BookRequest)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book updated", book)
}

// DeleteBook godoc
// DELETE /v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	if err := h.service.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book deleted", nil)
}

func handleError(c *gin.Context, err error) {
	statusCode, message, code := model.MapErrorToHTTP(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error("book request failed", err)
	}
	metrics.IncDomainError(code)
	_ = c.Error(err)
	response.Error(c, statusCode, message, code)
}
