package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/syzygy.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when even the embedded
// defaults cannot be parsed.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: "~/.syzygy/syzygy.db",
			Slot: "default",
		},
		Log: LogConfig{
			Level:  "info",
			Prefix: "syzygy",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Play: PlayConfig{
			ShowHelp: true,
		},
	}
}
