package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvUser, "")
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLog, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.StartLevelDB, cfg.StartLevelDB)
	assert.Equal(t, 10, cfg.StartLevelDB)
	assert.Equal(t, def.Pacing, cfg.Pacing)
	assert.Empty(t, cfg.UserID)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvUser, "")
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLog, "")
	path := writeConfig(t, `
[user]
id = "alice"

[test]
start_level_db = 20
pacing_ms = 0

[audio]
player = "aplay -q"
ramp_ms = 10

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.UserID)
	assert.Equal(t, 20, cfg.StartLevelDB)
	assert.Equal(t, 3, int(cfg.StartLevel()))
	assert.Equal(t, time.Duration(0), cfg.Pacing, "explicit zero is kept")
	assert.Equal(t, Default().ToneDuration, cfg.ToneDuration, "unset key keeps default")
	assert.Equal(t, "aplay -q", cfg.Player)
	assert.Equal(t, 10*time.Millisecond, cfg.Ramp)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[user]\nid = \"alice\"\n")
	t.Setenv(EnvUser, "bob")
	t.Setenv(EnvDB, "/tmp/h.db")
	t.Setenv(EnvLog, "/tmp/h.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.UserID)
	assert.Equal(t, "/tmp/h.db", cfg.DBPath)
	assert.Equal(t, "/tmp/h.log", cfg.LogPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"start level off table", func(c *Config) { c.StartLevelDB = 15 }, false},
		{"start level max", func(c *Config) { c.StartLevelDB = 120 }, true},
		{"negative pacing", func(c *Config) { c.Pacing = -time.Second }, false},
		{"zero tone", func(c *Config) { c.ToneDuration = 0 }, false},
		{"low sample rate", func(c *Config) { c.SampleRate = 8000 }, false},
		{"ramp too long", func(c *Config) { c.Ramp = time.Second }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, "[test\nstart_level_db = ")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/data", "hearwise", "hearwise.db"), Default().DBPath)

	cfg, err := Load(writeConfig(t, "[data]\ndb = \"/srv/h.db\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/h.db", cfg.DBPath)

	t.Setenv(EnvDB, "/tmp/env.db")
	cfg, err = Load(writeConfig(t, "[data]\ndb = \"/srv/h.db\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath, "environment wins over the file")
}
