// Package ioschema implements the lifecycle.SchemaManager interface.
// This is an impure I/O package that wraps GORM AutoMigrate.
package ioschema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vamsahq/vamsa/pkg/config"
	"github.com/vamsahq/vamsa/pkg/db"
	"github.com/vamsahq/vamsa/pkg/lifecycle"
	"github.com/vamsahq/vamsa/pkg/schema"
)

// manager implements lifecycle.SchemaManager using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using GORM AutoMigrate.
func (m *manager) Create(ctx context.Context, cfg *config.Config) error {
	return m.migrate(ctx)
}

// Migrate updates the database schema to the latest version using
// GORM AutoMigrate. GORM tracks schema changes per column.
func (m *manager) Migrate(ctx context.Context, cfg *config.Config) error {
	return m.migrate(ctx)
}

func (m *manager) migrate(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return fmt.Errorf("not connected to database")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Discard},
	)
	if err != nil {
		return fmt.Errorf("failed to open GORM connection: %w", err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
