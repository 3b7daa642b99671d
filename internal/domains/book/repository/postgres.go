package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/pkg/database"
	"bookstore-catalog/pkg/logger"
)

type postgresRepository struct {
	pool database.DBTX
}

func NewPostgresRepository(pool database.DBTX) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const (
	selectBookColumns = `
        SELECT id, title, description, page_count, author_id, created_at, updated_at
        FROM books
    `

	selectBookWithAuthorColumns = `
        SELECT b.id, b.title, b.description, b.page_count, b.author_id, b.created_at, b.updated_at,
               a.id, a.name, a.surname, a.created_at, a.updated_at
        FROM books b
        LEFT JOIN authors a ON a.id = b.author_id
    `
)

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.PageCount, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// scanBookWithAuthor reads a LEFT JOIN row; author columns are NULL for orphaned books.
func scanBookWithAuthor(row pgx.Row) (*model.Book, error) {
	var (
		b                 model.Book
		authorID          *uuid.UUID
		name, surname     *string
		created, modified *time.Time
	)

	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.PageCount, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
		&authorID, &name, &surname, &created, &modified,
	)
	if err != nil {
		return nil, err
	}

	if authorID != nil {
		b.Author = &model.Author{
			ID:        *authorID,
			Name:      *name,
			Surname:   *surname,
			CreatedAt: *created,
			UpdatedAt: *modified,
		}
	}
	return &b, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, err := scanBook(database.Conn(ctx, r.pool).QueryRow(ctx, selectBookColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("FindByID: database error", err)
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) FindByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	row := database.Conn(ctx, r.pool).QueryRow(ctx, selectBookWithAuthorColumns+` WHERE b.id = $1`, id)
	b, err := scanBookWithAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("FindByIDWithAuthor: database error", err)
		return nil, fmt.Errorf("failed to get book with author: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*model.Book, error) {
	return r.list(ctx, selectBookColumns+` ORDER BY created_at, id`, scanBook)
}

func (r *postgresRepository) FindAllWithAuthor(ctx context.Context) ([]*model.Book, error) {
	return r.list(ctx, selectBookWithAuthorColumns+` ORDER BY b.created_at, b.id`, scanBookWithAuthor)
}

func (r *postgresRepository) list(ctx context.Context, query string, scan func(pgx.Row) (*model.Book, error)) ([]*model.Book, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, query)
	if err != nil {
		logger.Error("FindAll: query failed", err)
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []*model.Book
	for rows.Next() {
		b, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Save(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (id, title, description, page_count, author_id, sort_order)
        VALUES ($1, $2, $3, $4, $5,
                COALESCE((SELECT MAX(sort_order) + 1 FROM books WHERE author_id = $5), 0))
        ON CONFLICT (id) DO UPDATE
        SET title = EXCLUDED.title,
            description = EXCLUDED.description,
            page_count = EXCLUDED.page_count,
            author_id = EXCLUDED.author_id,
            updated_at = NOW()
        RETURNING created_at, updated_at
    `

	err := database.Conn(ctx, r.pool).
		QueryRow(ctx, query, b.ID, b.Title, b.Description, b.PageCount, b.AuthorID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		logger.Error("Save: database error", err)
		return nil, fmt.Errorf("failed to save book: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		logger.Error("DeleteByID: database error", err)
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}
