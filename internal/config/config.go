package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/go-charstream/logger"
	"github.com/arloliu/go-charstream/stream"
)

var sourceKinds = []string{SourceStdin, SourceFile, SourceTCP, SourceWS, SourceNATS, SourceExec}

// Load reads a configuration file, applies environment overrides and
// validates the result. An empty path loads the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout: %v must not be negative", cfg.Timeout)
	}

	if cfg.PollInterval <= 0 || cfg.PollInterval > stream.MaxPollInterval {
		return fmt.Errorf("poll_interval: %v out of range (0, %v]", cfg.PollInterval, stream.MaxPollInterval)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if err := validateSource(&cfg.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}

	return nil
}

func validateSource(src *SourceConfig) error {
	if !slices.Contains(sourceKinds, src.Kind) {
		return fmt.Errorf("invalid kind %q (must be one of %v)", src.Kind, sourceKinds)
	}

	if src.Kind != SourceStdin && src.Address == "" {
		return fmt.Errorf("address is required for %s sources", src.Kind)
	}

	if src.Kind == SourceNATS && src.Subject == "" {
		return errors.New("subject is required for nats sources")
	}

	return nil
}
