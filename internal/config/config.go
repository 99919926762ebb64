// Package config provides YAML-based configuration loading for the
// puzzle player, the save store and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
	Play    PlayConfig    `yaml:"play"`
}

// StorageConfig locates the save database.
type StorageConfig struct {
	Path string `yaml:"path"` // sqlite file, "~" is expanded
	Slot string `yaml:"slot"` // save slot used by local play
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level  string `yaml:"level"` // debug, info, warn, error
	Prefix string `yaml:"prefix"`
}

// SSHConfig configures `syzygy serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // empty = ~/.syzygy/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// PlayConfig holds player preferences.
type PlayConfig struct {
	ShowHelp bool `yaml:"show_help"`
}

// Validate reports the first problem that would make the configuration
// unusable.
func (c Config) Validate() error {
	if c.Storage.Slot == "" {
		return errors.New("config: storage.slot must not be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.SSH.IdleTimeout <= 0 {
		return fmt.Errorf("config: ssh.idle_timeout must be positive, got %s", c.SSH.IdleTimeout)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
