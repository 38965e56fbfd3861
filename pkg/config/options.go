package config

import "strings"

// Option is a function that modifies a Config. Options validate their
// inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
func OptDatabaseSSLMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per bulk INSERT.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptImportIgnoreMissingReferences drops unresolved pointer edges
// silently during import instead of reporting them.
func OptImportIgnoreMissingReferences(b bool) Option {
	return func(c *Config) {
		c.Import.IgnoreMissingReferences = b
	}
}

// OptImportSkipValidation bypasses structural validation during import.
func OptImportSkipValidation(b bool) Option {
	return func(c *Config) {
		c.Import.SkipValidation = b
	}
}

// OptImportDryRun maps the file without writing to the database.
func OptImportDryRun(b bool) Option {
	return func(c *Config) {
		c.Import.DryRun = b
	}
}

// OptExportSourceProgram sets the HEAD SOUR value of generated files.
func OptExportSourceProgram(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Source Program", s) {
			c.Export.SourceProgram = s
		}
	}
}

// OptExportSubmitterName sets the HEAD SUBM value of generated files.
func OptExportSubmitterName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Submitter Name", s) {
			c.Export.SubmitterName = s
		}
	}
}

// OptLogFormat sets the log output format.
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the log level.
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where log output goes.
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the directory that anchors config and log paths.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
