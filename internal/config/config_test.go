package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "storage:\n  slot: alice\nssh:\n  idle_timeout: 5m\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Storage.Slot)
	assert.Equal(t, 5*time.Minute, cfg.SSH.IdleTimeout)
	assert.Equal(t, "~/.syzygy/syzygy.db", cfg.Storage.Path, "unset fields keep defaults")
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [1, 2"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty slot", func(c *Config) { c.Storage.Slot = "" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"zero timeout", func(c *Config) { c.SSH.IdleTimeout = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	assert.Equal(t, log.DebugLevel, cfg.Level())
	cfg.Log.Level = "nonsense"
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/tmp/x.db", ExpandHome("/tmp/x.db"))
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".syzygy", "x.db"), ExpandHome("~/.syzygy/x.db"))
}
