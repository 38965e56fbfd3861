// Package config provides configuration management for Vamsa.
//
// The package has no I/O dependencies; file loading lives in
// internal/ioconfig. Precedence (highest to lowest):
// CLI flags > env vars > config.yaml > defaults.
//
// The default config from New() is always valid. All mutations go
// through Option functions, and invalid option values are rejected
// with a warning so the config stays valid.
package config

import "runtime"

// Config represents the complete Vamsa configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Export contains settings specific to the export command.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for batched
	// database writes. Defaults to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and log directories reside.
	// Set by the CLI during init; runtime-only.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full".
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows per bulk INSERT during import.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ImportConfig contains recovery switches for the import command.
// Both default to false; they are explicit opt-outs for recovering
// otherwise-unimportable files.
type ImportConfig struct {
	// IgnoreMissingReferences drops unresolved pointer edges silently
	// instead of reporting broken_reference errors.
	IgnoreMissingReferences bool `mapstructure:"ignore_missing_references" yaml:"ignore_missing_references"`

	// SkipValidation bypasses structural validation of the parsed file.
	SkipValidation bool `mapstructure:"skip_validation" yaml:"skip_validation"`

	// DryRun maps the file and reports counts and errors without
	// writing anything to the database.
	DryRun bool `mapstructure:"-" yaml:"-"`
}

// ExportConfig contains header fields for generated GEDCOM files.
type ExportConfig struct {
	// SourceProgram is written verbatim into the HEAD SOUR line.
	SourceProgram string `mapstructure:"source_program" yaml:"source_program"`

	// SubmitterName is written verbatim into the HEAD SUBM line.
	SubmitterName string `mapstructure:"submitter_name" yaml:"submitter_name"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'.
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be 'file' (to the default place), 'stderr' or
	// 'stdout'.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values. The returned
// config is always valid and ready to use.
func New() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "vamsa",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Export: ExportConfig{
			SourceProgram: "Vamsa",
			SubmitterName: "Vamsa Export",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}
}

// Defaults is an alias of New for call sites that read better with it.
func Defaults() *Config {
	return New()
}
