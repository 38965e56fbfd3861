package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vamsahq/vamsa/internal/iodb"
	"github.com/vamsahq/vamsa/internal/ioschema"
)

func getMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations",
		Long: `Update the database schema to the latest version.

Migration is idempotent and never drops data: new columns and tables
are added, existing rows stay untouched.

Examples:
  vamsa migrate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			ctx := context.Background()

			op := iodb.NewPgxOperator()
			if err := op.Connect(ctx, &cfg.Database); err != nil {
				return err
			}
			defer op.Close()

			mgr := ioschema.NewManager(op)
			if err := mgr.Migrate(ctx, cfg); err != nil {
				return err
			}

			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}
