package iodb

import (
	"fmt"

	"github.com/vamsahq/vamsa/pkg/config"
)

// ConnectionError describes a failed connection attempt without
// leaking the password.
func ConnectionError(cfg *config.DatabaseConfig, err error) error {
	return fmt.Errorf(
		"failed to connect to postgres://%s@%s:%d/%s: %w",
		cfg.User, cfg.Host, cfg.Port, cfg.Database, err,
	)
}

// NotConnectedError marks an operation attempted before Connect.
func NotConnectedError() error {
	return fmt.Errorf("not connected to database")
}
