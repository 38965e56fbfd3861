package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsahq/vamsa/internal/ioconfig"
)

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `database:
  host: db.example.org
  port: 5433
import:
  skip_validation: true
export:
  submitter_name: Jane Doe
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := ioconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", res.Source)
	assert.Equal(t, path, res.SourcePath)
	assert.Equal(t, "db.example.org", res.Config.Database.Host)
	assert.Equal(t, 5433, res.Config.Database.Port)
	assert.True(t, res.Config.Import.SkipValidation)
	assert.Equal(t, "Jane Doe", res.Config.Export.SubmitterName)
	assert.Equal(t, "debug", res.Config.Log.Level)

	// Unset keys keep their defaults.
	assert.Equal(t, "postgres", res.Config.Database.User)
	assert.Equal(t, "vamsa", res.Config.Database.Database)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := ioconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `log:
  level: loud
  format: xml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := ioconfig.Load(path)
	require.NoError(t, err)

	// Invalid enum values are rejected by the option layer.
	assert.Equal(t, "info", res.Config.Log.Level)
	assert.Equal(t, "json", res.Config.Log.Format)
}
