package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-charstream/internal/config"
)

// ExitCode is set by commands to indicate the result.
// 0 = success, 1 = target not found or no value parsed.
var ExitCode = 0

// GlobalOptions holds the persistent flags shared by all commands.
type GlobalOptions struct {
	ConfigPath string
	Timeout    time.Duration
	LogLevel   string
	Stats      bool

	File    string
	TCP     string
	WS      string
	NATS    string
	Subject string
	Exec    string
	Raw     bool
}

// Register adds the persistent flags to root.
func (g *GlobalOptions) Register(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVarP(&g.ConfigPath, "config", "c", "", "Configuration file (YAML)")
	flags.DurationVarP(&g.Timeout, "timeout", "t", config.DefaultTimeout, "Time to wait for each byte")
	flags.StringVar(&g.LogLevel, "log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	flags.BoolVar(&g.Stats, "stats", false, "Print stream counters to stderr when done")

	flags.StringVar(&g.File, "file", "", "Read from a file")
	flags.StringVar(&g.TCP, "tcp", "", "Read from a TCP endpoint (host:port)")
	flags.StringVar(&g.WS, "ws", "", "Read from a websocket URL")
	flags.StringVar(&g.NATS, "nats", "", "Read from a NATS server URL (requires --subject)")
	flags.StringVar(&g.Subject, "subject", "", "NATS subject to subscribe to")
	flags.StringVar(&g.Exec, "exec", "", "Read the terminal output of a command")
	flags.BoolVar(&g.Raw, "raw", false, "Put an interactive stdin terminal into raw mode")
}

// resolve loads the configuration and applies the flags the user set on
// top of it.
func (g *GlobalOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = g.Timeout
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = g.LogLevel
	}
	if flags.Changed("raw") {
		cfg.Source.Raw = g.Raw
	}

	sources := []struct {
		kind  string
		value string
	}{
		{config.SourceFile, g.File},
		{config.SourceTCP, g.TCP},
		{config.SourceWS, g.WS},
		{config.SourceNATS, g.NATS},
		{config.SourceExec, g.Exec},
	}

	selected := 0
	for _, src := range sources {
		if src.value == "" {
			continue
		}
		selected++
		cfg.Source.Kind = src.kind
		cfg.Source.Address = src.value
		cfg.Source.Args = nil
	}
	if selected > 1 {
		return nil, errors.New("only one of --file, --tcp, --ws, --nats and --exec may be given")
	}

	if cfg.Source.Kind == config.SourceExec && g.Exec != "" {
		fields := strings.Fields(g.Exec)
		if len(fields) == 0 {
			return nil, errors.New("--exec: command must not be blank")
		}
		cfg.Source.Address = fields[0]
		cfg.Source.Args = fields[1:]
	}
	if g.Subject != "" {
		cfg.Source.Subject = g.Subject
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// unescape interprets Go escape sequences such as \r, \n and \x00 in s.
func unescape(s string) (string, error) {
	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape sequence in %q", s)
	}

	return out, nil
}

// parseByteFlag returns the single byte held by s after unescaping.
// ok is false for an empty s.
func parseByteFlag(name string, s string) (c byte, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}

	v, err := unescape(s)
	if err != nil {
		return 0, false, fmt.Errorf("--%s: %w", name, err)
	}
	if len(v) != 1 {
		return 0, false, fmt.Errorf("--%s: %q is not a single byte", name, s)
	}

	return v[0], true, nil
}
