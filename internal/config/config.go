// Package config loads hearwise settings from a TOML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/hearwise/internal/audiometry"
)

// Environment overrides.
const (
	EnvUser = "HEARWISE_USER"
	EnvDB   = "HEARWISE_DB"
	EnvLog  = "HEARWISE_LOG"
)

// FileConfig mirrors the TOML file. Pointer fields distinguish unset keys
// from zero values.
type FileConfig struct {
	User  UserSection  `toml:"user"`
	Test  TestSection  `toml:"test"`
	Audio AudioSection `toml:"audio"`
	Data  DataSection  `toml:"data"`
	Log   LogSection   `toml:"log"`
}

type UserSection struct {
	ID *string `toml:"id"`
}

type TestSection struct {
	StartLevelDB *int `toml:"start_level_db"`
	PacingMs     *int `toml:"pacing_ms"`
	ToneMs       *int `toml:"tone_ms"`
}

type AudioSection struct {
	Player     *string `toml:"player"`
	SampleRate *int    `toml:"sample_rate"`
	RampMs     *int    `toml:"ramp_ms"`
	KeepDir    *string `toml:"keep_dir"`
}

type DataSection struct {
	DB *string `toml:"db"`
}

type LogSection struct {
	Path  *string `toml:"path"`
	Level *string `toml:"level"`
}

// Config is the resolved configuration.
type Config struct {
	UserID string
	DBPath string

	StartLevelDB int
	Pacing       time.Duration
	ToneDuration time.Duration

	Player     string
	SampleRate int
	Ramp       time.Duration
	KeepDir    string

	LogPath  string
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StartLevelDB: audiometry.DefaultStartLevel.DB(),
		Pacing:       700 * time.Millisecond,
		ToneDuration: 1500 * time.Millisecond,
		SampleRate:   44100,
		Ramp:         20 * time.Millisecond,
		DBPath:       DefaultDBPath(),
		LogPath:      DefaultLogPath(),
		LogLevel:     "info",
	}
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return fc, nil
}

// Load builds a Config from defaults, the file at path, then environment
// variables. An empty path selects DefaultConfigPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	cfg.Apply(fc)
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply overlays the keys set in fc.
func (c *Config) Apply(fc FileConfig) {
	setString(&c.UserID, fc.User.ID)
	setInt(&c.StartLevelDB, fc.Test.StartLevelDB)
	setMillis(&c.Pacing, fc.Test.PacingMs)
	setMillis(&c.ToneDuration, fc.Test.ToneMs)
	setString(&c.Player, fc.Audio.Player)
	setInt(&c.SampleRate, fc.Audio.SampleRate)
	setMillis(&c.Ramp, fc.Audio.RampMs)
	setString(&c.KeepDir, fc.Audio.KeepDir)
	setString(&c.DBPath, fc.Data.DB)
	setString(&c.LogPath, fc.Log.Path)
	setString(&c.LogLevel, fc.Log.Level)
}

// ApplyEnv overlays environment overrides read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvUser)); v != "" {
		c.UserID = v
	}
	if v := getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := getenv(EnvLog); v != "" {
		c.LogPath = v
	}
}

// StartLevel returns the configured start level as a table index.
func (c Config) StartLevel() audiometry.Level {
	l, ok := audiometry.LevelForDB(c.StartLevelDB)
	if !ok {
		return audiometry.DefaultStartLevel
	}
	return l
}

// Validate rejects settings the engine or renderer cannot use.
func (c Config) Validate() error {
	if _, ok := audiometry.LevelForDB(c.StartLevelDB); !ok {
		return fmt.Errorf("start_level_db %d is not one of %v", c.StartLevelDB, audiometry.Levels)
	}
	if c.Pacing < 0 {
		return fmt.Errorf("pacing_ms must not be negative")
	}
	if c.ToneDuration <= 0 {
		return fmt.Errorf("tone_ms must be positive")
	}
	if c.SampleRate < 2*int(audiometry.Frequencies[len(audiometry.Frequencies)-1])+1 {
		return fmt.Errorf("sample_rate %d too low for %s", c.SampleRate, audiometry.Frequencies[len(audiometry.Frequencies)-1])
	}
	if c.Ramp < 0 || 2*c.Ramp > c.ToneDuration {
		return fmt.Errorf("ramp_ms must be between 0 and half of tone_ms")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q must be debug, info, warn or error", c.LogLevel)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, v *int) {
	if v != nil {
		*dst = time.Duration(*v) * time.Millisecond
	}
}
