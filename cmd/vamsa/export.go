package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vamsahq/vamsa/internal/iodb"
	"github.com/vamsahq/vamsa/internal/ioexport"
	pkgconfig "github.com/vamsahq/vamsa/pkg/config"
)

func getExportCmd() *cobra.Command {
	var (
		source    string
		submitter string
	)

	exportCmd := &cobra.Command{
		Use:   "export <file.ged>",
		Short: "Export the database as a GEDCOM file",
		Long: `Export the stored family tree as a GEDCOM 5.5.1 file.

People appear in the order they were imported; every person appears
exactly once, whether or not they belong to a family.

Examples:
  vamsa export family.ged
  vamsa export --submitter "Jane Doe" family.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			var opts []pkgconfig.Option
			if source != "" {
				opts = append(opts, pkgconfig.OptExportSourceProgram(source))
			}
			if submitter != "" {
				opts = append(opts, pkgconfig.OptExportSubmitterName(submitter))
			}
			cfg.Update(opts)
			return runExport(cfg, args[0])
		},
	}

	exportCmd.Flags().StringVar(&source, "source", "",
		"program name written into the file header")
	exportCmd.Flags().StringVar(&submitter, "submitter", "",
		"submitter name written into the file header")

	return exportCmd
}

func runExport(cfg *pkgconfig.Config, path string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	exp := ioexport.New(cfg, op)
	summary, err := exp.Export(ctx, path)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d people in %d families to %s\n",
		summary.People, summary.Families, summary.FileName)
	return nil
}
