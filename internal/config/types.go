// Package config loads the charscan configuration file.
package config

import "time"

// Source kinds.
const (
	SourceStdin = "stdin"
	SourceFile  = "file"
	SourceTCP   = "tcp"
	SourceWS    = "ws"
	SourceNATS  = "nats"
	SourceExec  = "exec"
)

// Config is the charscan configuration.
type Config struct {
	// Timeout is the time to wait for each byte.
	Timeout time.Duration `yaml:"timeout"`
	// PollInterval is the sleep between attempts on polling sources.
	PollInterval time.Duration `yaml:"poll_interval"`
	// Log configures diagnostics written to stderr.
	Log LogConfig `yaml:"log"`
	// Source selects where bytes come from.
	Source SourceConfig `yaml:"source"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// SourceConfig selects and addresses a byte source.
type SourceConfig struct {
	// Kind is one of stdin, file, tcp, ws, nats or exec.
	Kind string `yaml:"kind"`
	// Address is the file path, host:port, websocket URL, NATS URL or
	// command, depending on Kind.
	Address string `yaml:"address"`
	// Subject is the NATS subject.
	Subject string `yaml:"subject"`
	// Args are the command arguments for the exec kind.
	Args []string `yaml:"args"`
	// Raw puts an interactive stdin terminal into raw mode.
	Raw bool `yaml:"raw"`
}
