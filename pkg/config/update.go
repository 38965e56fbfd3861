package config

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Update applies a slice of Option functions to the Config. This is
// the only way to modify a Config after creation. Invalid options are
// rejected with warnings and the config remains in a valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions. Only
// persistent fields appropriate for config.yaml are included; runtime
// fields (HomeDir, DryRun) are not. Used for round-tripping
// config.yaml <-> Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	if s := c.Database.Host; s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	if i := c.Database.Port; i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	if s := c.Database.User; s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	if s := c.Database.Password; s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	if s := c.Database.Database; s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	if s := c.Database.SSLMode; s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	if i := c.Database.BatchSize; i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	res = append(res,
		OptImportIgnoreMissingReferences(c.Import.IgnoreMissingReferences),
		OptImportSkipValidation(c.Import.SkipValidation),
	)

	if s := c.Export.SourceProgram; s != "" {
		res = append(res, OptExportSourceProgram(s))
	}
	if s := c.Export.SubmitterName; s != "" {
		res = append(res, OptExportSubmitterName(s))
	}

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}

	if i := c.JobsNumber; i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		slog.Warn("Ignoring empty config value", "field", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		slog.Warn("Ignoring non-positive config value",
			"field", name, "value", i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	valid := slices.Sorted(maps.Keys(data[name]))
	slog.Warn("Ignoring unsupported config value",
		"field", name, "value", val,
		"valid", strings.Join(valid, ", "))
	return false
}
