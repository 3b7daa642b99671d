package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/catalog/model"
)

// RepositoryInterface is the data access contract for books.
// Lookups return (nil, nil) when the row does not exist.
type RepositoryInterface interface {
	// FindByID loads the book row only; Author stays nil.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// FindByIDWithAuthor joins the owner. Author is nil if the owner row is gone.
	FindByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.Book, error)

	FindAll(ctx context.Context) ([]*model.Book, error)
	FindAllWithAuthor(ctx context.Context) ([]*model.Book, error)

	// Save upserts the book. New books are appended to the end of their author's list.
	Save(ctx context.Context, book *model.Book) (*model.Book, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
}
