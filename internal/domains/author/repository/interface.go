package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/catalog/model"
)

// RepositoryInterface is the data access contract for authors.
// Lookups return (nil, nil) when the row does not exist.
type RepositoryInterface interface {
	// FindByID loads the author row only; Books stays nil.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// FindByIDForShare is FindByID holding a share lock on the row until the
	// surrounding transaction ends, so the author cannot be deleted meanwhile.
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// FindByIDWithBooks loads the author and its books; Books is non-nil when found.
	FindByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.Author, error)

	FindAll(ctx context.Context) ([]*model.Author, error)
	FindAllWithBooks(ctx context.Context) ([]*model.Author, error)

	// ExistsByNameAndSurname checks the natural key, case-sensitive.
	ExistsByNameAndSurname(ctx context.Context, name, surname string) (bool, error)

	// Save upserts the author. When Books is non-nil the author's stored books are
	// replaced by exactly that list. Must run inside a transaction to be atomic.
	// Returns an ALREADY_EXISTS CatalogError on a (name, surname) collision.
	Save(ctx context.Context, author *model.Author) (*model.Author, error)

	// Delete removes the author row only.
	Delete(ctx context.Context, author *model.Author) error
}
