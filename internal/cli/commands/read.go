package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ReadOptions holds command-line options for the read command.
type ReadOptions struct {
	Until string
	Max   int
}

// NewReadCommand creates the read command.
func NewReadCommand(g *GlobalOptions) *cobra.Command {
	opts := &ReadOptions{}

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Copy input to stdout until a terminator, a size limit or silence",
		Long: `Copy input to stdout until the input ends or goes silent for longer than
the timeout.

--until stops at a terminator byte, which is consumed but not printed.
--max stops after that many bytes.

Example:
  charscan read --tcp gps:10110 --until '\n'
  charscan read --exec 'cat /dev/ttyUSB0' --max 64 --timeout 200ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Until, "until", "u", "", "Terminator byte, e.g. '\\n'")
	cmd.Flags().IntVarP(&opts.Max, "max", "m", 0, "Maximum number of bytes to read (0 for no limit)")

	return cmd
}

func runRead(cmd *cobra.Command, g *GlobalOptions, opts *ReadOptions) error {
	ExitCode = 0

	terminator, hasTerminator, err := parseByteFlag("until", opts.Until)
	if err != nil {
		return err
	}
	if opts.Max < 0 {
		return fmt.Errorf("--max: %d must not be negative", opts.Max)
	}

	sess, err := openSession(cmd, g)
	if err != nil {
		return err
	}
	defer sess.Close()

	s := sess.stream

	var data []byte
	switch {
	case opts.Max > 0 && hasTerminator:
		buf := make([]byte, opts.Max)
		data = buf[:s.ReadBytesUntil(terminator, buf)]
	case opts.Max > 0:
		buf := make([]byte, opts.Max)
		data = buf[:s.ReadBytes(buf)]
	case hasTerminator:
		data = []byte(s.ReadStringUntil(terminator))
	default:
		data = []byte(s.ReadString())
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
