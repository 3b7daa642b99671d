package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tpg "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"bookstore-catalog/internal/infrastructure/database"
)

// PostgresContainer is a throwaway PostgreSQL with the catalog schema applied.
type PostgresContainer struct {
	DB        *database.PostgresDB
	container *tpg.PostgresContainer
}

// StartPostgres boots postgres:16-alpine and connects a pool to it.
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	pgc, err := tpg.Run(ctx, "postgres:16-alpine",
		tpg.WithDatabase("catalog_test"),
		tpg.WithUsername("user"),
		tpg.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := pgc.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgc.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		_ = pgc.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &database.PostgresDB{Pool: pool}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		_ = pgc.Terminate(ctx)
		return nil, err
	}

	return &PostgresContainer{DB: db, container: pgc}, nil
}

// Reset empties the catalog tables between tests.
func (p *PostgresContainer) Reset(ctx context.Context) error {
	_, err := p.DB.Pool.Exec(ctx, `TRUNCATE books, authors`)
	return err
}

func (p *PostgresContainer) Terminate(ctx context.Context) {
	p.DB.Close()
	_ = p.container.Terminate(ctx)
}
