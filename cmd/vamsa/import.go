package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vamsahq/vamsa/internal/iodb"
	"github.com/vamsahq/vamsa/internal/ioimport"
	pkgconfig "github.com/vamsahq/vamsa/pkg/config"
)

func getImportCmd() *cobra.Command {
	var (
		ignoreMissingRefs bool
		skipValidation    bool
		dryRun            bool
	)

	importCmd := &cobra.Command{
		Use:   "import <file.ged>",
		Short: "Import a GEDCOM file into the database",
		Long: `Import a GEDCOM 5.5.1 or 7.0 file into the database.

The file is parsed, validated and mapped into people and
relationships. Validation issues and mapping errors are printed at
the end of the run; they do not stop the import by themselves.

Recovery switches for otherwise-unimportable files:
  --ignore-missing-refs  drop edges whose target record is missing,
                         instead of reporting broken references
  --skip-validation      skip the structural validation pass

Examples:
  vamsa import family.ged
  vamsa import --dry-run family.ged
  vamsa import --ignore-missing-refs --skip-validation damaged.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			cfg.Update([]pkgconfig.Option{
				pkgconfig.OptImportIgnoreMissingReferences(ignoreMissingRefs),
				pkgconfig.OptImportSkipValidation(skipValidation),
				pkgconfig.OptImportDryRun(dryRun),
			})
			return runImport(cfg, args[0])
		},
	}

	importCmd.Flags().BoolVar(&ignoreMissingRefs, "ignore-missing-refs",
		false, "drop unresolved references silently")
	importCmd.Flags().BoolVar(&skipValidation, "skip-validation",
		false, "skip structural validation of the parsed file")
	importCmd.Flags().BoolVar(&dryRun, "dry-run",
		false, "map the file and report, without writing to the database")

	return importCmd
}

func runImport(cfg *pkgconfig.Config, path string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if !cfg.Import.DryRun {
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			return err
		}
		defer op.Close()
	}

	imp := ioimport.New(cfg, op)
	summary, err := imp.Import(ctx, path)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d people and %d relationships from %s (GEDCOM %s)\n",
		summary.People, summary.Relationships,
		summary.FileName, summary.GedcomVersion)
	if summary.DryRun {
		fmt.Println("Dry run: nothing was written to the database.")
	}

	for _, issue := range summary.Issues {
		fmt.Printf("  %s: %s\n", issue.Severity, issue.Message)
	}
	for _, e := range summary.Errors {
		fmt.Printf("  %s: %s\n", e.Type, e.Message)
	}
	return nil
}
