package service

//go:generate mockgen -source=interface.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"bookstore-catalog/internal/domains/catalog/model"
)

// ServiceInterface defines the author use cases.
// Ids are raw tokens; malformed ones fail with INVALID_INPUT before any store access.
type ServiceInterface interface {
	// GetAuthor returns the shallow view.
	// Errors: NOT_FOUND
	GetAuthor(ctx context.Context, id string) (*model.AuthorResponse, error)

	// GetAuthorWithBooks returns the full view, read from one consistent snapshot.
	// Errors: NOT_FOUND
	GetAuthorWithBooks(ctx context.Context, id string) (*model.AuthorFullResponse, error)

	// ListAuthors fails with NOT_FOUND when there are no authors at all.
	ListAuthors(ctx context.Context) ([]*model.AuthorResponse, error)
	ListAuthorsWithBooks(ctx context.Context) ([]*model.AuthorFullResponse, error)

	// CreateAuthor creates the author and, when req.Books is not nil, its books in the same transaction.
	// Errors: ALREADY_EXISTS when (name, surname) is taken
	CreateAuthor(ctx context.Context, req *model.AuthorCreateRequest) (*model.AuthorFullResponse, error)

	// UpdateAuthor overwrites name and surname. A non-nil req.Books replaces the whole collection,
	// nil keeps the current books.
	// Errors: NOT_FOUND
	UpdateAuthor(ctx context.Context, id string, req *model.AuthorCreateRequest) (*model.AuthorFullResponse, error)

	// DeleteAuthor removes the author row only; its books are not deleted.
	// Errors: NOT_FOUND
	DeleteAuthor(ctx context.Context, id string) error
}
