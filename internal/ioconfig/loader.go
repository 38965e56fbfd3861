// Package ioconfig provides I/O operations for loading configuration
// from files, environment variables and flags. This is an impure
// package; the config model itself lives in pkg/config.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/vamsahq/vamsa/pkg/config"
)

// LoadResult contains the loaded configuration and metadata about its
// source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // path to the config file used, empty for defaults
	Source     string // "file", "defaults" or "defaults+env"
}

// Load reads configuration from a YAML file and returns a validated
// Config with source info. An empty configPath falls back to
// ~/.config/vamsa/config.yaml, then to defaults plus environment
// variables. Precedence: flags > env vars > config file > defaults.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("VAMSA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults registered before reading so AutomaticEnv knows which
	// keys to check even without a config file.
	defaults := config.Defaults()
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.ssl_mode", defaults.Database.SSLMode)
	v.SetDefault("database.batch_size", defaults.Database.BatchSize)
	v.SetDefault("import.ignore_missing_references", defaults.Import.IgnoreMissingReferences)
	v.SetDefault("import.skip_validation", defaults.Import.SkipValidation)
	v.SetDefault("export.source_program", defaults.Export.SourceProgram)
	v.SetDefault("export.submitter_name", defaults.Export.SubmitterName)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.destination", defaults.Log.Destination)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if home, err := os.UserHomeDir(); err == nil {
		defaultPath := config.ConfigFilePath(home)
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			v.SetConfigFile(defaultPath)
		}
	}

	configFileRead := false
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else if configPath != "" || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
	}

	cfg := config.New()
	loaded := config.New()
	if err := v.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	// Route everything through options so invalid values are rejected
	// and cfg stays valid.
	cfg.Update(loaded.ToOptions())

	if home, err := os.UserHomeDir(); err == nil {
		cfg.Update([]config.Option{config.OptHomeDir(home)})
	}

	res := &LoadResult{Config: cfg}
	switch {
	case configFileRead:
		res.Source = "file"
		res.SourcePath = v.ConfigFileUsed()
	case hasEnvOverrides():
		res.Source = "defaults+env"
	default:
		res.Source = "defaults"
	}
	return res, nil
}

// hasEnvOverrides reports whether any VAMSA_* environment variable is
// set. Used only for the source label shown to the user.
func hasEnvOverrides() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "VAMSA_") {
			return true
		}
	}
	return false
}
