package stream

import "time"

// timedRead reads the next byte, waiting up to the timeout for it to arrive.
//
// Each call starts its own deadline, so the timeout bounds the gap between two
// bytes rather than a whole operation.
func (s *Stream) timedRead() (byte, bool) {
	deadline := time.Now().Add(s.Timeout())
	for {
		if c, ok := s.src.TryRead(); ok {
			s.metrics.incBytesRead()
			return c, true
		}

		if !s.wait(deadline) {
			s.metrics.incTimeoutCount()
			return 0, false
		}
	}
}

// timedPeek is timedRead without consuming the byte.
func (s *Stream) timedPeek() (byte, bool) {
	deadline := time.Now().Add(s.Timeout())
	for {
		if c, ok := s.src.TryPeek(); ok {
			return c, true
		}

		if !s.wait(deadline) {
			s.metrics.incTimeoutCount()
			return 0, false
		}
	}
}

// skip consumes the byte returned by the last successful peek.
func (s *Stream) skip() {
	if _, ok := s.src.TryRead(); ok {
		s.metrics.incBytesRead()
	}
}

// wait blocks until the source may have data or the deadline passes.
// It returns false once the caller should give up.
func (s *Stream) wait(deadline time.Time) bool {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return false
	}

	if s.waiter != nil {
		return s.waiter.WaitAvailable(remaining)
	}

	time.Sleep(min(remaining, s.pollInterval))

	return true
}
