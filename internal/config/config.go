package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/minesweeper-go/internal/engine"
)

// Environment variables read by FromEnvironment
const (
	EnvConfigPath = "SWEEPER_CONFIG"
	EnvHost       = "SWEEPER_HOST"
	EnvPort       = "SWEEPER_PORT"
	EnvLogLevel   = "SWEEPER_LOG_LEVEL"
)

// Config holds the server configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// GameConfig holds board defaults and limits for hosted games
type GameConfig struct {
	DefaultWidth     int `yaml:"default_width"`
	DefaultHeight    int `yaml:"default_height"`
	DefaultMineCount int `yaml:"default_mine_count"`
	MaxWidth         int `yaml:"max_width"`
	MaxHeight        int `yaml:"max_height"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second, // SSE keepalive is 15s
			ShutdownTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Game: GameConfig{
			DefaultWidth:     9,
			DefaultHeight:    9,
			DefaultMineCount: 10,
			MaxWidth:         100,
			MaxHeight:        100,
		},
	}
}

// FromEnvironment loads the file named by SWEEPER_CONFIG, if any, and
// applies the remaining SWEEPER_* overrides
func FromEnvironment() (Config, error) {
	return Load(os.Getenv(EnvConfigPath), os.LookupEnv)
}

// Load builds a config from defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides from lookup
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	if v, ok := lookup(EnvHost); ok {
		cfg.Server.Host = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Game.MaxWidth < 1 || c.Game.MaxHeight < 1 {
		return fmt.Errorf("maximum board size must be positive, got %dx%d", c.Game.MaxWidth, c.Game.MaxHeight)
	}
	if c.Game.DefaultWidth > c.Game.MaxWidth || c.Game.DefaultHeight > c.Game.MaxHeight {
		return fmt.Errorf("default board %dx%d exceeds the maximum %dx%d",
			c.Game.DefaultWidth, c.Game.DefaultHeight, c.Game.MaxWidth, c.Game.MaxHeight)
	}
	if err := engine.ValidateConfiguration(c.Game.DefaultWidth, c.Game.DefaultHeight, c.Game.DefaultMineCount); err != nil {
		return fmt.Errorf("default board: %w", err)
	}
	return nil
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
