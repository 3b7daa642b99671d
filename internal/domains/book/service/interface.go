package service

//go:generate mockgen -source=interface.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"bookstore-catalog/internal/domains/catalog/model"
)

// ServiceInterface defines the book use cases.
type ServiceInterface interface {
	GetBook(ctx context.Context, id string) (*model.BookResponse, error)
	GetBookWithAuthor(ctx context.Context, id string) (*model.BookFullResponse, error)

	// ListBooks and ListBooksWithAuthor return (nil, nil) for an empty catalog.
	ListBooks(ctx context.Context) ([]*model.BookResponse, error)
	ListBooksWithAuthor(ctx context.Context) ([]*model.BookFullResponse, error)

	// CreateBook requires req.AuthorID to reference an existing author.
	CreateBook(ctx context.Context, req *model.BookCreateRequest) (*model.BookFullResponse, error)

	// UpdateBook overwrites title, description and page count. The owning author never changes.
	UpdateBook(ctx context.Context, id string, req *model.BookRequest) (*model.BookFullResponse, error)

	DeleteBook(ctx context.Context, id string) error
}
