package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arloliu/go-charstream/internal/config"
	"github.com/arloliu/go-charstream/logger"
	"github.com/arloliu/go-charstream/source"
	"github.com/arloliu/go-charstream/stream"
)

// session is an open source wrapped in a stream for one command run.
type session struct {
	stream  *stream.Stream
	logger  logger.Logger
	stats   bool
	errOut  io.Writer
	closers []func() error
}

// openSession resolves the configuration and opens the configured source.
func openSession(cmd *cobra.Command, g *GlobalOptions) (*session, error) {
	cfg, err := g.resolve(cmd)
	if err != nil {
		return nil, err
	}

	level, _ := logger.ParseLevel(cfg.Log.Level) // validated by resolve
	l := logger.NewSlogWithWriter(cmd.ErrOrStderr(), level, false, cfg.Log.Console)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sess := &session{logger: l, stats: g.Stats, errOut: cmd.ErrOrStderr()}

	src, err := sess.openSource(ctx, cmd, cfg.Source)
	if err != nil {
		_ = sess.Close()
		return nil, fmt.Errorf("opening %s source: %w", cfg.Source.Kind, err)
	}

	sess.stream, err = stream.New(src,
		stream.WithTimeout(cfg.Timeout),
		stream.WithPollInterval(cfg.PollInterval),
		stream.WithLogger(l),
		stream.WithName(cfg.Source.Kind),
	)
	if err != nil {
		_ = sess.Close()
		return nil, err
	}

	l.Debug("source opened", "kind", cfg.Source.Kind, "address", cfg.Source.Address, "timeout", cfg.Timeout)

	return sess, nil
}

func (s *session) openSource(ctx context.Context, cmd *cobra.Command, cfg config.SourceConfig) (stream.Source, error) {
	switch cfg.Kind {
	case config.SourceStdin:
		in := cmd.InOrStdin()
		if cfg.Raw {
			if err := s.makeRaw(in); err != nil {
				return nil, err
			}
		}
		// Stdin is not ours to close. Its pump goroutine stays blocked in Read
		// after Close until stdin reaches EOF or the process exits.
		rd := source.NewReader(io.NopCloser(in))
		s.closers = append(s.closers, rd.Close)

		return rd, nil

	case config.SourceFile:
		f, err := os.Open(cfg.Address)
		if err != nil {
			return nil, err
		}
		rd := source.NewReader(f)
		s.closers = append(s.closers, rd.Close)

		return rd, nil

	case config.SourceTCP:
		conn, err := source.DialConn(ctx, "tcp", cfg.Address)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, conn.Close)

		return conn, nil

	case config.SourceWS:
		ws, err := source.DialWebSocket(ctx, cfg.Address, nil)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, ws.Close)

		return ws, nil

	case config.SourceNATS:
		src, err := source.DialNATS(cfg.Address, cfg.Subject, nats.Name("charscan"))
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, src.Close)

		return src, nil

	case config.SourceExec:
		c, err := source.StartCommand(ctx, cfg.Address, cfg.Args...)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, c.Close)

		return c, nil
	}

	return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
}

// makeRaw puts in into raw mode when it is a terminal, so bytes reach the
// stream as they are typed.
func (s *session) makeRaw(in io.Reader) error {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		s.logger.Warn("--raw ignored, stdin is not a terminal")
		return nil
	}

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	s.closers = append(s.closers, func() error { return term.Restore(fd, state) })

	return nil
}

// Close prints the stream counters if requested and releases the source.
func (s *session) Close() error {
	if s.stats && s.stream != nil {
		if err := printStats(context.Background(), s.errOut, s.stream); err != nil {
			s.logger.Warn("collecting stats failed", "error", err)
		}
	}

	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}
