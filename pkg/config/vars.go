package config

import "path/filepath"

// AppName is used in generating file system paths.
var AppName = "vamsa"

// ConfigDir returns the directory path for configuration files,
// ~/.config/vamsa by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files,
// ~/.local/share/vamsa/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file,
// ~/.config/vamsa/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
