package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `timeout: 250ms
poll_interval: 5ms
log:
  level: debug
  console: true
source:
  kind: nats
  address: nats://127.0.0.1:4222
  subject: modem.rx
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 5*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, SourceNATS, cfg.Source.Kind)
	assert.Equal(t, "modem.rx", cfg.Source.Subject)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvTimeout, "2s")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvSource, "tcp:localhost:5000")

	cfg, err := Load(writeConfig(t, "timeout: 100ms\n"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, SourceTCP, cfg.Source.Kind)
	assert.Equal(t, "localhost:5000", cfg.Source.Address)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config file")

	_, err = Load(writeConfig(t, "timeout: [1, 2]\n"))
	require.ErrorContains(t, err, "parsing config file")

	t.Setenv(EnvTimeout, "soon")
	_, err = Load("")
	require.ErrorContains(t, err, "environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero timeout", func(cfg *Config) { cfg.Timeout = 0 }, ""},
		{"negative timeout", func(cfg *Config) { cfg.Timeout = -time.Second }, "timeout"},
		{"zero poll interval", func(cfg *Config) { cfg.PollInterval = 0 }, "poll_interval"},
		{"huge poll interval", func(cfg *Config) { cfg.PollInterval = time.Minute }, "poll_interval"},
		{"bad level", func(cfg *Config) { cfg.Log.Level = "loud" }, "log.level"},
		{"bad kind", func(cfg *Config) { cfg.Source.Kind = "serial" }, "invalid kind"},
		{"missing address", func(cfg *Config) { cfg.Source.Kind = SourceTCP }, "address is required"},
		{"missing subject", func(cfg *Config) {
			cfg.Source.Kind = SourceNATS
			cfg.Source.Address = "nats://localhost:4222"
		}, "subject is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
