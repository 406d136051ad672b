package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-charstream/stream"
)

// FindOptions holds command-line options for the find command.
type FindOptions struct {
	Until string
}

// NewFindCommand creates the find command.
func NewFindCommand(g *GlobalOptions) *cobra.Command {
	opts := &FindOptions{}

	cmd := &cobra.Command{
		Use:   "find <target> [target...]",
		Short: "Wait for a target string in the input",
		Long: `Consume input until a target string has been read.

With several targets, stops at whichever completes first and prints its
index. Escape sequences such as \r, \n and \x00 are interpreted.

Exits with code 1 if the input ended, went silent for longer than the
timeout, or reached the --until terminator before a target was found.

Example:
  charscan find --tcp modem:5000 'OK\r\n'
  charscan find --exec 'sh -c ./boot.sh' 'login:' 'panic'
  charscan find --file capture.log --until '\n' 'ERROR'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Until, "until", "u", "", "Give up when this terminator is read first")

	return cmd
}

func runFind(cmd *cobra.Command, args []string, g *GlobalOptions, opts *FindOptions) error {
	ExitCode = 0

	targets := make([][]byte, len(args))
	for i, arg := range args {
		v, err := unescape(arg)
		if err != nil {
			return err
		}
		targets[i] = []byte(v)
	}

	terminator, err := unescape(opts.Until)
	if err != nil {
		return fmt.Errorf("--until: %w", err)
	}
	if terminator != "" && len(targets) > 1 {
		return errors.New("--until accepts a single target")
	}

	sess, err := openSession(cmd, g)
	if err != nil {
		return err
	}
	defer sess.Close()

	s := sess.stream
	out := cmd.OutOrStdout()

	index := 0
	switch {
	case len(targets) > 1:
		index = s.FindMulti(targets...)
	case terminator != "":
		if !s.FindUntil(targets[0], []byte(terminator)) {
			index = stream.NoMatch
		}
	default:
		if !s.Find(targets[0]) {
			index = stream.NoMatch
		}
	}

	if index == stream.NoMatch {
		ExitCode = 1
		_, _ = fmt.Fprintln(out, "not found")

		return nil
	}

	if len(targets) > 1 {
		_, _ = fmt.Fprintf(out, "found %d %q\n", index, targets[index])
	} else {
		_, _ = fmt.Fprintln(out, "found")
	}

	return nil
}
