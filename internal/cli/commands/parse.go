package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-charstream/stream"
)

// ParseOptions holds command-line options for the parse-int and parse-float
// commands.
type ParseOptions struct {
	Lookahead string
	Ignore    string
	Count     int
}

// NewParseIntCommand creates the parse-int command.
func NewParseIntCommand(g *GlobalOptions) *cobra.Command {
	return newParseCommand(g, "parse-int", "Parse integers from the input", false)
}

// NewParseFloatCommand creates the parse-float command.
func NewParseFloatCommand(g *GlobalOptions) *cobra.Command {
	return newParseCommand(g, "parse-float", "Parse decimal numbers from the input", true)
}

func newParseCommand(g *GlobalOptions, use string, short string, float bool) *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

Prints one value per line. Parsing stops after --count values, when the
input ends or goes silent for longer than the timeout, or when the
lookahead policy rejects the next byte. Use --count 0 for no limit.

Lookahead policies:
  all         skip every byte that cannot start a number
  none        the number must start at the current byte
  whitespace  skip only spaces, tabs, CR and LF

Exits with code 1 if no value was parsed.

Example:
  echo 'temp=21.5 hum=40' | charscan ` + use + ` --count 2
  charscan ` + use + ` --ignore , --file prices.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParse(cmd, g, opts, float)
		},
	}

	cmd.Flags().StringVarP(&opts.Lookahead, "lookahead", "l", stream.SkipAll.String(), "Lookahead policy (all|none|whitespace)")
	cmd.Flags().StringVarP(&opts.Ignore, "ignore", "i", "", "Byte to skip inside a number, e.g. a thousands separator")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "Number of values to parse (0 for no limit)")

	return cmd
}

func runParse(cmd *cobra.Command, g *GlobalOptions, opts *ParseOptions, float bool) error {
	ExitCode = 0

	mode, err := stream.ParseLookaheadMode(opts.Lookahead)
	if err != nil {
		return fmt.Errorf("--lookahead: %w", err)
	}
	parseOpts := []stream.ParseOption{stream.WithLookahead(mode)}

	ignore, ok, err := parseByteFlag("ignore", opts.Ignore)
	if err != nil {
		return err
	}
	if ok {
		parseOpts = append(parseOpts, stream.WithIgnore(ignore))
	}

	if opts.Count < 0 {
		return fmt.Errorf("--count: %d must not be negative", opts.Count)
	}

	sess, err := openSession(cmd, g)
	if err != nil {
		return err
	}
	defer sess.Close()

	s := sess.stream
	out := cmd.OutOrStdout()

	parsed := 0
	for opts.Count == 0 || parsed < opts.Count {
		var text string
		if float {
			v, perr := s.ParseFloat(parseOpts...)
			err = perr
			text = strconv.FormatFloat(v, 'f', -1, 64)
		} else {
			v, perr := s.ParseInt(parseOpts...)
			err = perr
			text = strconv.FormatInt(v, 10)
		}

		if err != nil {
			if !errors.Is(err, stream.ErrTimeout) && !errors.Is(err, stream.ErrNoNumber) {
				return err
			}
			sess.logger.Debug("parsing stopped", "parsed", parsed, "error", err)

			break
		}

		_, _ = fmt.Fprintln(out, text)
		parsed++
	}

	if parsed == 0 {
		ExitCode = 1
	}

	return nil
}
