// Package ioexport implements the lifecycle.Exporter interface: it
// loads the stored family tree from PostgreSQL, maps it back into
// GEDCOM records and writes the generated 5.5.1 text to a file.
package ioexport

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
	"github.com/vamsahq/vamsa/pkg/vamsa"
)

// exporter implements the Exporter interface.
type exporter struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Exporter.
func New(cfg *config.Config, op db.Operator) lifecycle.Exporter {
	return &exporter{cfg: cfg, operator: op}
}

// Export loads people and relationships in their original import
// order, maps them into GEDCOM records and writes the result. Output
// is always version 5.5.1 regardless of what was imported.
func (ex *exporter) Export(
	ctx context.Context,
	path string,
) (*lifecycle.ExportSummary, error) {
	start := time.Now()

	if ex.operator.Pool() == nil {
		return nil, fmt.Errorf("not connected to database")
	}

	people, err := ex.loadPeople(ctx)
	if err != nil {
		return nil, err
	}
	relationships, err := ex.loadRelationships(ctx)
	if err != nil {
		return nil, err
	}

	exp := mapper.ToGedcom(people, relationships)
	text := gedcom.Generate(exp.Individuals, exp.Families,
		gedcom.GeneratorConfig{
			SourceProgram: ex.cfg.Export.SourceProgram,
			SubmitterName: ex.cfg.Export.SubmitterName,
		})

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	summary := &lifecycle.ExportSummary{
		FileName: filepath.Base(path),
		People:   len(exp.Individuals),
		Families: len(exp.Families),
		Bytes:    len(text),
		Elapsed:  time.Since(start),
	}
	slog.Info("Export complete",
		"file", summary.FileName,
		"people", humanize.Comma(int64(summary.People)),
		"families", humanize.Comma(int64(summary.Families)),
		"size", humanize.Bytes(uint64(summary.Bytes)),
		"elapsed", summary.Elapsed.Round(time.Millisecond).String(),
	)
	return summary, nil
}

// loadPeople reads all people ordered by their import sequence.
func (ex *exporter) loadPeople(ctx context.Context) ([]vamsa.Person, error) {
	rows, err := ex.operator.Pool().Query(ctx,
		`SELECT id, first_name, last_name, gender, date_of_birth,
		        date_of_passing, birth_place, profession, bio, is_living
		 FROM people
		 ORDER BY seq, created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []vamsa.Person
	for rows.Next() {
		var p vamsa.Person
		var gender string
		err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &gender,
			&p.DateOfBirth, &p.DateOfPassing, &p.BirthPlace,
			&p.Profession, &p.Bio, &p.IsLiving)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Gender = vamsa.Gender(gender)
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read people: %w", err)
	}
	return people, nil
}

// loadRelationships reads all relationship edges ordered by their
// import sequence.
func (ex *exporter) loadRelationships(ctx context.Context) ([]vamsa.Relationship, error) {
	rows, err := ex.operator.Pool().Query(ctx,
		`SELECT id, person_id, related_person_id, type, marriage_date,
		        divorce_date, is_active
		 FROM relationships
		 ORDER BY seq, created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	var relationships []vamsa.Relationship
	for rows.Next() {
		var r vamsa.Relationship
		var relType string
		err := rows.Scan(&r.ID, &r.PersonID, &r.RelatedPersonID,
			&relType, &r.MarriageDate, &r.DivorceDate, &r.IsActive)
		if err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		r.Type = vamsa.RelationshipType(relType)
		relationships = append(relationships, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read relationships: %w", err)
	}
	return relationships, nil
}
