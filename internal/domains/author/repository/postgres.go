package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/pkg/database"
	"bookstore-catalog/pkg/logger"
)

const (
	uniqueViolation          = "23505"
	nameSurnameConstraintKey = "authors_name_surname_key"
)

// postgresRepository implements RepositoryInterface with pgx.
// Queries run on the transaction carried by ctx when there is one.
type postgresRepository struct {
	pool database.DBTX
}

func NewPostgresRepository(pool database.DBTX) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const selectAuthorColumns = `SELECT id, name, surname, created_at, updated_at FROM authors`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	if err := row.Scan(&a.ID, &a.Name, &a.Surname, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := scanAuthor(database.Conn(ctx, r.pool).QueryRow(ctx, selectAuthorColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("FindByID: database error", err)
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := scanAuthor(database.Conn(ctx, r.pool).QueryRow(ctx, selectAuthorColumns+` WHERE id = $1 FOR SHARE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("FindByIDForShare: database error", err)
		return nil, fmt.Errorf("failed to lock author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) FindByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := r.FindByID(ctx, id)
	if err != nil || a == nil {
		return a, err
	}

	byAuthor, err := r.loadBooks(ctx, []*model.Author{a})
	if err != nil {
		return nil, err
	}
	a.Books = byAuthor[a.ID]
	return a, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]*model.Author, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, selectAuthorColumns+` ORDER BY created_at, id`)
	if err != nil {
		logger.Error("FindAll: query failed", err)
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []*model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) FindAllWithBooks(ctx context.Context) ([]*model.Author, error) {
	authors, err := r.FindAll(ctx)
	if err != nil || len(authors) == 0 {
		return authors, err
	}

	byAuthor, err := r.loadBooks(ctx, authors)
	if err != nil {
		return nil, err
	}
	for _, a := range authors {
		a.Books = byAuthor[a.ID]
	}
	return authors, nil
}

// loadBooks fetches the books of all given authors in one query.
// Every author gets a non-nil slice, possibly empty.
func (r *postgresRepository) loadBooks(ctx context.Context, authors []*model.Author) (map[uuid.UUID][]*model.Book, error) {
	ids := make([]string, len(authors))
	byAuthor := make(map[uuid.UUID][]*model.Book, len(authors))
	for i, a := range authors {
		ids[i] = a.ID.String()
		byAuthor[a.ID] = []*model.Book{}
	}

	query := `
        SELECT id, title, description, page_count, author_id, created_at, updated_at
        FROM books
        WHERE author_id = ANY($1::uuid[])
        ORDER BY author_id, sort_order, created_at, id
    `

	rows, err := database.Conn(ctx, r.pool).Query(ctx, query, ids)
	if err != nil {
		logger.Error("loadBooks: query failed", err)
		return nil, fmt.Errorf("failed to query author books: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.PageCount, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		byAuthor[b.AuthorID] = append(byAuthor[b.AuthorID], &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author books: %w", err)
	}

	return byAuthor, nil
}

func (r *postgresRepository) ExistsByNameAndSurname(ctx context.Context, name, surname string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1 AND surname = $2)`

	var exists bool
	if err := database.Conn(ctx, r.pool).QueryRow(ctx, query, name, surname).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Save(ctx context.Context, a *model.Author) (*model.Author, error) {
	conn := database.Conn(ctx, r.pool)

	query := `
        INSERT INTO authors (id, name, surname)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE
        SET name = EXCLUDED.name,
            surname = EXCLUDED.surname,
            updated_at = NOW()
        RETURNING created_at, updated_at
    `

	err := conn.QueryRow(ctx, query, a.ID, a.Name, a.Surname).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == nameSurnameConstraintKey {
			return nil, model.NewAuthorAlreadyExists(a.Name, a.Surname)
		}
		logger.Error("Save: database error", err)
		return nil, fmt.Errorf("failed to save author: %w", err)
	}

	if a.Books != nil {
		if err := r.replaceBooks(ctx, conn, a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// replaceBooks swaps the stored collection of a for a.Books, keeping list order.
func (r *postgresRepository) replaceBooks(ctx context.Context, conn database.DBTX, a *model.Author) error {
	if _, err := conn.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, a.ID); err != nil {
		return fmt.Errorf("failed to clear author books: %w", err)
	}
	if len(a.Books) == 0 {
		return nil
	}

	insert := `
        INSERT INTO books (id, title, description, page_count, author_id, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at
    `

	batch := &pgx.Batch{}
	for i, b := range a.Books {
		batch.Queue(insert, b.ID, b.Title, b.Description, b.PageCount, b.AuthorID, i)
	}

	results := conn.SendBatch(ctx, batch)
	for _, b := range a.Books {
		if err := results.QueryRow().Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
			_ = results.Close()
			logger.Error("Save: book insert failed", err)
			return fmt.Errorf("failed to insert book %s: %w", b.ID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close book batch: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, a *model.Author) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM authors WHERE id = $1`, a.ID); err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete author: %w", err)
	}
	return nil
}
