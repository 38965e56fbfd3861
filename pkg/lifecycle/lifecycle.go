// Package lifecycle defines the contracts of the import/export
// pipeline. Implementations live under internal/ and are impure; the
// contracts keep the CLI decoupled from them.
package lifecycle

import (
	"context"
	"time"

	"github.com/vamsahq/vamsa/pkg/config"
	"github.com/vamsahq/vamsa/pkg/gedcom"
	"github.com/vamsahq/vamsa/pkg/vamsa"
)

// SchemaManager handles database schema management through GORM
// AutoMigrate. Both operations are idempotent.
type SchemaManager interface {
	// Create creates the initial database schema.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the database schema to the latest version.
	Migrate(ctx context.Context, cfg *config.Config) error
}

// ImportSummary reports what one import run produced. Errors and
// Issues are advisory; the run persists unless reading or parsing the
// file failed outright.
type ImportSummary struct {
	FileName      string
	GedcomVersion string
	Individuals   int
	Families      int
	People        int
	Relationships int
	Issues        []gedcom.ValidationIssue
	Errors        []vamsa.MappingError
	DryRun        bool
	Elapsed       time.Duration
}

// Importer reads a GEDCOM file, maps it into the domain and persists
// the result.
type Importer interface {
	Import(ctx context.Context, path string) (*ImportSummary, error)
}

// ExportSummary reports what one export run produced.
type ExportSummary struct {
	FileName string
	People   int
	Families int
	Bytes    int
	Elapsed  time.Duration
}

// Exporter loads the stored family tree and writes it out as GEDCOM
// 5.5.1 text.
type Exporter interface {
	Export(ctx context.Context, path string) (*ExportSummary, error)
}
