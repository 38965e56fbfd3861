package ioconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vamsahq/vamsa/pkg/config"
)

const configHeader = `# Vamsa configuration.
#
# Every value here can be overridden with a VAMSA_* environment
# variable (nested keys use underscores: database.host becomes
# VAMSA_DATABASE_HOST) or with a CLI flag.
`

// ConfigFileExists reports whether a config file exists at the default
// location.
func ConfigFileExists() (bool, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return false, fmt.Errorf("failed to get user home directory: %w", err)
	}
	_, err = os.Stat(config.ConfigFilePath(home))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// GenerateDefaultConfig writes a documented default config file to the
// default location and returns its path. Existing files are never
// overwritten.
func GenerateDefaultConfig() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := config.ConfigFilePath(home)
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(config.ConfigDir(home), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := yaml.Marshal(config.Defaults())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	content := append([]byte(configHeader+"\n"), body...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configPath, nil
}
