package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vamsahq/vamsa/pkg/gedcom"
)

func getValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.ged>",
		Short: "Check a GEDCOM file without importing it",
		Long: `Parse a GEDCOM file and report structural and referential issues.

The database is never touched. The command exits with a non-zero
status when any error-severity issue is found, so it can gate
automated imports.

Examples:
  vamsa validate family.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			file, err := gedcom.Parse(string(data))
			if err != nil {
				return err
			}

			issues := gedcom.Validate(file)
			hasErrors := false
			for _, issue := range issues {
				fmt.Printf("%s: %s\n", issue.Severity, issue.Message)
				if issue.Severity == gedcom.SeverityError {
					hasErrors = true
				}
			}

			fmt.Printf("%d individuals, %d families, GEDCOM %s, %d issues\n",
				len(file.Individuals), len(file.Families),
				file.GedcomVersion, len(issues))

			if hasErrors {
				return fmt.Errorf("validation found errors")
			}
			return nil
		},
	}
}
