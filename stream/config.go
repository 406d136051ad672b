package stream

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/go-charstream/logger"
)

const (
	// DefaultTimeout is the default time to wait for the next byte.
	DefaultTimeout = 1000 * time.Millisecond

	// DefaultPollInterval is the sleep between two attempts on a source that
	// does not implement Waiter.
	DefaultPollInterval = 1 * time.Millisecond

	// MaxPollInterval bounds the poll interval so a timeout overshoots by at
	// most this much.
	MaxPollInterval = 100 * time.Millisecond
)

// Option is a functional option for configuring a Stream.
type Option interface {
	apply(*Stream) error
}

type optFunc func(*Stream) error

func (f optFunc) apply(s *Stream) error { return f(s) }

// WithTimeout sets the time to wait for each byte. Zero means a single
// attempt without waiting.
func WithTimeout(d time.Duration) Option {
	return optFunc(func(s *Stream) error {
		if d < 0 {
			return fmt.Errorf("stream: timeout %v must not be negative", d)
		}
		s.timeout.Store(int64(d))

		return nil
	})
}

// WithPollInterval sets the sleep between attempts on sources that do not
// implement Waiter. Must be in (0, MaxPollInterval].
func WithPollInterval(d time.Duration) Option {
	return optFunc(func(s *Stream) error {
		if d <= 0 || d > MaxPollInterval {
			return fmt.Errorf("stream: poll interval %v out of range (0, %v]", d, MaxPollInterval)
		}
		s.pollInterval = d

		return nil
	})
}

// WithLogger sets the logger used to report operation outcomes.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(s *Stream) error {
		if l == nil {
			return errors.New("stream: logger is nil")
		}
		s.logger = l

		return nil
	})
}

// WithName names the stream. The name is attached to every log record.
func WithName(name string) Option {
	return optFunc(func(s *Stream) error {
		s.name = name
		return nil
	})
}
