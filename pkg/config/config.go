// Package config loads the abacus YAML configuration. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing, so values can be
// kept in the environment or in a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level abacus configuration.
type Config struct {
	// MaxInputLength caps the operand a user can type (0 = no cap).
	MaxInputLength int          `yaml:"max_input_length"`
	Toast          ToastConfig  `yaml:"toast"`
	Log            LogConfig    `yaml:"log"`
	Keypad         KeypadConfig `yaml:"keypad"`
	Theme          ThemeConfig  `yaml:"theme"`
}

// ToastConfig controls notifications such as the division-by-zero warning.
type ToastConfig struct {
	Duration string `yaml:"duration"` // e.g. "3s", "1500ms".
}

// LogConfig controls structured logging.
type LogConfig struct {
	File  string `yaml:"file"`  // Empty = the command's default sink.
	Level string `yaml:"level"` // debug, info, warn or error.
}

// KeypadConfig controls the on-screen keypad.
type KeypadConfig struct {
	Show bool `yaml:"show"`
}

// ThemeConfig holds lipgloss color values (ANSI index or hex).
type ThemeConfig struct {
	Accent   string `yaml:"accent"`
	Operator string `yaml:"operator"`
	Muted    string `yaml:"muted"`
	Error    string `yaml:"error"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxInputLength: 16,
		Toast:          ToastConfig{Duration: "3s"},
		Log:            LogConfig{Level: "warn"},
		Keypad:         KeypadConfig{Show: true},
		Theme: ThemeConfig{
			Accent:   "6",
			Operator: "214",
			Muted:    "8",
			Error:    "1",
		},
	}
}

// LoadConfig reads a YAML file on top of Default and returns the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	return Parse(data)
}

// LoadOrDefault is LoadConfig, except that a missing file yields Default.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse expands environment references in data and decodes it on top of
// Default. The result is validated.
func Parse(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.MaxInputLength < 0 {
		return fmt.Errorf("config: max_input_length must not be negative, got %d", c.MaxInputLength)
	}

	if c.Toast.Duration != "" {
		d, err := time.ParseDuration(c.Toast.Duration)
		if err != nil {
			return fmt.Errorf("config: toast: invalid duration %q: %w", c.Toast.Duration, err)
		}
		if d <= 0 {
			return fmt.Errorf("config: toast: duration must be positive, got %q", c.Toast.Duration)
		}
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// ToastDuration returns the parsed toast duration, defaulting to 3s.
func (c Config) ToastDuration() time.Duration {
	d, err := time.ParseDuration(c.Toast.Duration)
	if err != nil || d <= 0 {
		return 3 * time.Second
	}
	return d
}

// LogLevel returns the configured slog level, defaulting to warn.
func (c Config) LogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: log: unknown level %q", s)
	}
}
