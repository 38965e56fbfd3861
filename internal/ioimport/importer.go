// Package ioimport implements the lifecycle.Importer interface: it
// reads a GEDCOM file, maps it into the domain and bulk-inserts the
// result into PostgreSQL. This is an impure I/O package; all parsing
// and mapping logic lives in pkg/gedcom and pkg/mapper.
package ioimport

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vamsahq/vamsa/pkg/config"
	"github.com/vamsahq/vamsa/pkg/db"
	"github.com/vamsahq/vamsa/pkg/gedcom"
	"github.com/vamsahq/vamsa/pkg/lifecycle"
	"github.com/vamsahq/vamsa/pkg/mapper"
)

// importer implements the Importer interface.
type importer struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Importer.
func New(cfg *config.Config, op db.Operator) lifecycle.Importer {
	return &importer{cfg: cfg, operator: op}
}

// Import runs the whole pipeline for one file: read, parse, validate,
// map, persist, log. Validation issues and mapping errors accumulate
// in the summary instead of failing the run; only an unreadable or
// structurally unusable file (no HEAD/TRLR) is fatal.
func (im *importer) Import(
	ctx context.Context,
	path string,
) (*lifecycle.ImportSummary, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, err := gedcom.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var issues []gedcom.ValidationIssue
	if !im.cfg.Import.SkipValidation {
		issues = gedcom.Validate(file)
	}

	res := mapper.FromGedcom(file, mapper.Options{
		IgnoreMissingReferences: im.cfg.Import.IgnoreMissingReferences,
		SkipValidation:          im.cfg.Import.SkipValidation,
	})

	summary := &lifecycle.ImportSummary{
		FileName:      filepath.Base(path),
		GedcomVersion: file.GedcomVersion,
		Individuals:   len(file.Individuals),
		Families:      len(file.Families),
		People:        len(res.People),
		Relationships: len(res.Relationships),
		Issues:        issues,
		Errors:        res.Errors,
		DryRun:        im.cfg.Import.DryRun,
	}

	if im.cfg.Import.DryRun {
		summary.Elapsed = time.Since(start)
		slog.Info("Dry run complete, nothing persisted",
			"file", summary.FileName,
			"people", summary.People,
			"relationships", summary.Relationships,
			"errors", len(summary.Errors),
		)
		return summary, nil
	}

	if im.operator.Pool() == nil {
		return nil, fmt.Errorf("not connected to database")
	}

	if err := im.insertPeople(ctx, res.People); err != nil {
		return nil, err
	}
	if err := im.insertRelationships(ctx, res.Relationships); err != nil {
		return nil, err
	}
	if err := im.writeImportLog(ctx, summary); err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(start)
	slog.Info("Import complete",
		"file", summary.FileName,
		"gedcom_version", summary.GedcomVersion,
		"people", humanize.Comma(int64(summary.People)),
		"relationships", humanize.Comma(int64(summary.Relationships)),
		"errors", len(summary.Errors),
		"elapsed", summary.Elapsed.Round(time.Millisecond).String(),
	)
	return summary, nil
}
