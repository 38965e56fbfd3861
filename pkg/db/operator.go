// Package db defines the database operator contract implemented by
// internal/iodb.
package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vamsahq/vamsa/pkg/config"
)

// Operator defines basic database management operations. It provides
// connection lifecycle management and exposes the pgxpool.Pool so the
// lifecycle components (SchemaManager, Importer, Exporter) can run
// their specialized SQL internally.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. Components use it for
	// transactions, bulk inserts and custom queries.
	Pool() *pgxpool.Pool

	// HasTables reports whether the public schema contains any tables.
	// Used to decide whether schema creation should prompt before
	// overwriting.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema. Used during
	// schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}
