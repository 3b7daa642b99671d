package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed schema/catalog.sql
var catalogSchema string

// EnsureSchema creates the catalog tables when they are missing.
// Statements are idempotent, so it runs on every start.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, catalogSchema); err != nil {
		return fmt.Errorf("failed to apply catalog schema: %w", err)
	}

	log.Info().Msg("[DATABASE] Catalog schema ready")
	return nil
}
