package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vamsahq/vamsa/internal/ioconfig"
	"github.com/vamsahq/vamsa/internal/iologger"
	pkgconfig "github.com/vamsahq/vamsa/pkg/config"
)

var (
	cfgFile string
	cfg     *pkgconfig.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vamsa",
		Short: "Vamsa imports and exports family trees as GEDCOM",
		Long: `Vamsa manages a PostgreSQL-backed family tree and moves it across
system boundaries using the GEDCOM interchange format (5.5.1 and 7.0).

Main commands:
  - create:   create the database schema
  - migrate:  apply schema migrations
  - import:   import a GEDCOM file into the database
  - export:   export the database as a GEDCOM 5.5.1 file
  - validate: check a GEDCOM file without touching the database

Configuration precedence (highest to lowest):
  1. CLI flags (--dry-run, --source, etc.)
  2. Environment variables (VAMSA_*)
  3. Config file (~/.config/vamsa/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host becomes
  VAMSA_DATABASE_HOST).

  Examples:
    VAMSA_DATABASE_HOST        PostgreSQL host
    VAMSA_DATABASE_PORT        PostgreSQL port
    VAMSA_DATABASE_USER        PostgreSQL user
    VAMSA_DATABASE_PASSWORD    PostgreSQL password
    VAMSA_DATABASE_DATABASE    Database name
    VAMSA_LOG_LEVEL            Log level (debug/info/warn/error)`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Generate a documented config file on first run.
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err == nil && !exists {
					if path, genErr := ioconfig.GenerateDefaultConfig(); genErr == nil {
						fmt.Printf("Generated default config at: %s\n", path)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			return iologger.Init(cfg.HomeDir, cfg.Log)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/vamsa/config.yaml)")

	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getMigrateCmd())
	rootCmd.AddCommand(getImportCmd())
	rootCmd.AddCommand(getExportCmd())
	rootCmd.AddCommand(getValidateCmd())
	rootCmd.AddCommand(getVersionCmd())

	return rootCmd
}

// getConfig returns the loaded configuration for subcommands.
func getConfig() *pkgconfig.Config {
	return cfg
}
