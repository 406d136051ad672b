// Package cli provides the command-line interface for charscan.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-charstream/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors prevents Cobra from printing this
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // configuration or runtime error
	}

	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "charscan",
		Short: "Scan character streams for strings and numbers",
		Long: `charscan reads a character stream from stdin, a file, a TCP endpoint,
a websocket, a NATS subject or a command's terminal, and waits for target
strings or parses numbers out of it.

Every read waits at most --timeout for the next byte, so a silent device
ends the command instead of hanging it.

Configuration is read from --config (YAML) and overridden by the
CHARSCAN_TIMEOUT, CHARSCAN_LOG_LEVEL and CHARSCAN_SOURCE environment
variables, then by flags.

Exit codes:
  0  success
  1  target not found or no value parsed
  2  configuration or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.Register(rootCmd)

	rootCmd.AddCommand(commands.NewFindCommand(opts))
	rootCmd.AddCommand(commands.NewParseIntCommand(opts))
	rootCmd.AddCommand(commands.NewParseFloatCommand(opts))
	rootCmd.AddCommand(commands.NewReadCommand(opts))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
