package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
max_input_length: 12
toast:
  duration: 1500ms
log:
  file: ${ABACUS_TEST_LOG}
  level: debug
keypad:
  show: false
theme:
  accent: "#0969da"
`

func TestLoadConfig(t *testing.T) {
	t.Setenv("ABACUS_TEST_LOG", "/tmp/abacus.log")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MaxInputLength)
	assert.Equal(t, 1500*time.Millisecond, cfg.ToastDuration())
	assert.Equal(t, "/tmp/abacus.log", cfg.Log.File)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.False(t, cfg.Keypad.Show)
	assert.Equal(t, "#0969da", cfg.Theme.Accent)
	// Unset keys keep their defaults.
	assert.Equal(t, Default().Theme.Operator, cfg.Theme.Operator)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("max_input_length: [1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default is valid", mutate: func(*Config) {}},
		{name: "negative cap", mutate: func(c *Config) { c.MaxInputLength = -1 }, wantErr: "max_input_length"},
		{name: "bad duration", mutate: func(c *Config) { c.Toast.Duration = "soon" }, wantErr: "invalid duration"},
		{name: "zero duration", mutate: func(c *Config) { c.Toast.Duration = "0s" }, wantErr: "must be positive"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "unknown level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.MaxInputLength = 20

	data, err := Marshal(cfg)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, 3*time.Second, cfg.ToastDuration())
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
}
