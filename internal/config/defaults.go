package config

import (
	"os"
	"strings"
	"time"

	"github.com/arloliu/go-charstream/stream"
)

// Default values for configuration.
const (
	DefaultTimeout      = stream.DefaultTimeout
	DefaultPollInterval = stream.DefaultPollInterval
	DefaultLogLevel     = "warn"
)

// Environment variable names.
const (
	EnvTimeout  = "CHARSCAN_TIMEOUT"
	EnvLogLevel = "CHARSCAN_LOG_LEVEL"
	// EnvSource holds "kind:address", e.g. "tcp:localhost:5000".
	EnvSource = "CHARSCAN_SOURCE"
)

// DefaultConfig returns a configuration reading stdin with the stream
// defaults.
func DefaultConfig() *Config {
	return &Config{
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Source: SourceConfig{
			Kind: SourceStdin,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Timeout = d
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(EnvSource); v != "" {
		kind, addr, _ := strings.Cut(v, ":")
		c.Source.Kind = kind
		c.Source.Address = addr
	}

	return nil
}
