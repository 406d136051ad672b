package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testTimeout = 20 * time.Millisecond

// memSource is an in-memory Source without Waiter support.
type memSource struct {
	data  []byte
	pos   int
	reads int
	peeks int
}

func (m *memSource) Available() int { return len(m.data) - m.pos }

func (m *memSource) TryRead() (byte, bool) {
	m.reads++
	if m.pos >= len(m.data) {
		return 0, false
	}
	c := m.data[m.pos]
	m.pos++

	return c, true
}

func (m *memSource) TryPeek() (byte, bool) {
	m.peeks++
	if m.pos >= len(m.data) {
		return 0, false
	}

	return m.data[m.pos], true
}

// rest returns the unread bytes.
func (m *memSource) rest() string { return string(m.data[m.pos:]) }

// silentSource never produces a byte. As a Waiter it blocks for the full
// timeout, as a poll source it always reports empty.
type silentSource struct {
	waits int
}

func (s *silentSource) Available() int        { return 0 }
func (s *silentSource) TryRead() (byte, bool) { return 0, false }
func (s *silentSource) TryPeek() (byte, bool) { return 0, false }

type silentWaiter struct {
	silentSource
}

func (s *silentWaiter) WaitAvailable(timeout time.Duration) bool {
	s.waits++
	time.Sleep(timeout)

	return false
}

// newTestStream creates a stream over data with a short timeout.
func newTestStream(t *testing.T, data string, opts ...Option) (*Stream, *memSource) {
	t.Helper()

	src := &memSource{data: []byte(data)}
	s, err := New(src, append([]Option{WithTimeout(testTimeout)}, opts...)...)
	require.NoError(t, err)

	return s, src
}
