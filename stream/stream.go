package stream

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/arloliu/go-charstream/logger"
)

// Stream adds timed reads, substring search and numeric parsing to a Source.
//
// This type is NOT goroutine-safe. The caller must ensure that only one
// operation is active at a time; SetTimeout, Timeout and GetMetrics are the
// exceptions.
type Stream struct {
	src    Source
	waiter Waiter // src as a Waiter, nil if src cannot block

	name         string
	timeout      atomic.Int64 // time.Duration
	pollInterval time.Duration
	logger       logger.Logger

	metrics Metrics
}

var _ io.ByteReader = (*Stream)(nil)

// New creates a Stream reading from src.
//
// The stream borrows src; it never closes it.
func New(src Source, opts ...Option) (*Stream, error) {
	if src == nil {
		return nil, ErrSourceNil
	}

	s := &Stream{
		src:          src,
		pollInterval: DefaultPollInterval,
		logger:       logger.GetLogger(),
	}
	s.timeout.Store(int64(DefaultTimeout))

	if w, ok := src.(Waiter); ok {
		s.waiter = w
	}

	for _, opt := range opts {
		if err := opt.apply(s); err != nil {
			return nil, err
		}
	}

	if s.name != "" {
		s.logger = s.logger.With("stream", s.name)
	}

	return s, nil
}

// Name returns the stream name set by WithName.
func (s *Stream) Name() string { return s.name }

// Source returns the underlying byte source.
func (s *Stream) Source() Source { return s.src }

// Timeout returns the time to wait for each byte.
func (s *Stream) Timeout() time.Duration {
	return time.Duration(s.timeout.Load())
}

// SetTimeout sets the time to wait for each byte. It affects all subsequent
// timed reads, including those of an operation already in progress.
// A negative d is treated as zero.
func (s *Stream) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.timeout.Store(int64(d))
}

// PollInterval returns the sleep between attempts on a polling source.
func (s *Stream) PollInterval() time.Duration { return s.pollInterval }

// GetMetrics returns the metrics of the stream.
func (s *Stream) GetMetrics() *Metrics { return &s.metrics }

// Available returns the number of bytes the source can deliver without waiting.
func (s *Stream) Available() int { return s.src.Available() }

// TryRead consumes the next byte without waiting.
func (s *Stream) TryRead() (byte, bool) {
	c, ok := s.src.TryRead()
	if ok {
		s.metrics.incBytesRead()
	}

	return c, ok
}

// TryPeek returns the next byte without waiting and without consuming it.
func (s *Stream) TryPeek() (byte, bool) { return s.src.TryPeek() }

// ReadByte reads the next byte, waiting up to the timeout.
// It returns ErrTimeout if no byte arrived.
func (s *Stream) ReadByte() (byte, error) {
	c, ok := s.timedRead()
	if !ok {
		return 0, ErrTimeout
	}

	return c, nil
}

// PeekByte returns the next byte without consuming it, waiting up to the
// timeout. It returns ErrTimeout if no byte arrived.
func (s *Stream) PeekByte() (byte, error) {
	c, ok := s.timedPeek()
	if !ok {
		return 0, ErrTimeout
	}

	return c, nil
}
