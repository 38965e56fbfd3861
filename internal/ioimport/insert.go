package ioimport

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vamsahq/vamsa/pkg/gedcom"
	"github.com/vamsahq/vamsa/pkg/lifecycle"
	"github.com/vamsahq/vamsa/pkg/vamsa"
)

// insertPeople bulk-inserts people in batches. Each row carries an
// explicit seq so exports can reproduce input order even though
// batches run concurrently.
func (im *importer) insertPeople(
	ctx context.Context,
	people []vamsa.Person,
) error {
	if len(people) == 0 {
		return nil
	}

	base, err := im.nextSeq(ctx, "people")
	if err != nil {
		return err
	}

	bar := pb.Full.Start(len(people))
	bar.Set("prefix", "Importing people: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	now := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(im.cfg.JobsNumber)

	batchSize := im.cfg.Database.BatchSize
	for start := 0; start < len(people); start += batchSize {
		end := min(start+batchSize, len(people))
		batch := people[start:end]
		seq := base + int64(start)

		g.Go(func() error {
			var values []string
			var args []any
			idx := 1
			for i, p := range batch {
				values = append(values, placeholders(idx, 13))
				args = append(args,
					p.ID, p.FirstName, p.LastName, string(p.Gender),
					p.DateOfBirth, p.DateOfPassing, p.BirthPlace,
					p.Profession, p.Bio, p.IsLiving,
					seq+int64(i)+1, now, now,
				)
				idx += 13
			}

			query := fmt.Sprintf(
				`INSERT INTO people
				 (id, first_name, last_name, gender, date_of_birth,
				  date_of_passing, birth_place, profession, bio,
				  is_living, seq, created_at, updated_at)
				 VALUES %s
				 ON CONFLICT (id) DO NOTHING`,
				strings.Join(values, ", "),
			)
			if _, err := im.operator.Pool().Exec(gCtx, query, args...); err != nil {
				return fmt.Errorf("failed to insert people batch: %w", err)
			}
			bar.Add(len(batch))
			return nil
		})
	}
	return g.Wait()
}

// insertRelationships bulk-inserts relationship edges, preserving
// input order through explicit seq values.
func (im *importer) insertRelationships(
	ctx context.Context,
	rels []vamsa.Relationship,
) error {
	if len(rels) == 0 {
		return nil
	}

	base, err := im.nextSeq(ctx, "relationships")
	if err != nil {
		return err
	}

	bar := pb.Full.Start(len(rels))
	bar.Set("prefix", "Importing relationships: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	now := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(im.cfg.JobsNumber)

	batchSize := im.cfg.Database.BatchSize
	for start := 0; start < len(rels); start += batchSize {
		end := min(start+batchSize, len(rels))
		batch := rels[start:end]
		seq := base + int64(start)

		g.Go(func() error {
			var values []string
			var args []any
			idx := 1
			for i, r := range batch {
				values = append(values, placeholders(idx, 9))
				args = append(args,
					r.ID, r.PersonID, r.RelatedPersonID, string(r.Type),
					r.MarriageDate, r.DivorceDate, r.IsActive,
					seq+int64(i)+1, now,
				)
				idx += 9
			}

			query := fmt.Sprintf(
				`INSERT INTO relationships
				 (id, person_id, related_person_id, type, marriage_date,
				  divorce_date, is_active, seq, created_at)
				 VALUES %s
				 ON CONFLICT (id) DO NOTHING`,
				strings.Join(values, ", "),
			)
			if _, err := im.operator.Pool().Exec(gCtx, query, args...); err != nil {
				return fmt.Errorf("failed to insert relationships batch: %w", err)
			}
			bar.Add(len(batch))
			return nil
		})
	}
	return g.Wait()
}

// writeImportLog records one row describing the run, with every
// accumulated validation issue and mapping error joined into the
// errors column.
func (im *importer) writeImportLog(
	ctx context.Context,
	summary *lifecycle.ImportSummary,
) error {
	// Error-severity issues already surface as mapping errors, so only
	// warnings are taken from the validation report.
	var msgs []string
	for _, issue := range summary.Issues {
		if issue.Severity == gedcom.SeverityWarning {
			msgs = append(msgs, fmt.Sprintf("[%s] %s", issue.Severity, issue.Message))
		}
	}
	for _, e := range summary.Errors {
		msgs = append(msgs, fmt.Sprintf("[%s] %s", e.Type, e.Message))
	}

	_, err := im.operator.Pool().Exec(ctx,
		`INSERT INTO import_logs
		 (id, file_name, gedcom_version, individuals, families,
		  people, relationships, error_count, errors, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.NewString(), summary.FileName, summary.GedcomVersion,
		summary.Individuals, summary.Families, summary.People,
		summary.Relationships, len(msgs), strings.Join(msgs, "\n"),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to write import log: %w", err)
	}
	return nil
}

// nextSeq returns the current maximum seq of a table, so new rows
// continue the ordering across repeated imports.
func (im *importer) nextSeq(ctx context.Context, table string) (int64, error) {
	var cur int64
	err := im.operator.Pool().QueryRow(ctx,
		fmt.Sprintf(`SELECT COALESCE(MAX(seq), 0) FROM %s`, table),
	).Scan(&cur)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s sequence: %w", table, err)
	}
	return cur, nil
}

// placeholders renders "($n, $n+1, ...)" for one row of width count
// starting at parameter number start.
func placeholders(start, count int) string {
	parts := make([]string, count)
	for i := range count {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
