package stream

import (
	"github.com/arloliu/go-charstream/internal/pool"
)

// ReadBytes reads bytes into buf until it is full or the timeout expires.
// It returns the number of bytes stored; 0 means nothing arrived in time.
func (s *Stream) ReadBytes(buf []byte) int {
	count := 0
	for count < len(buf) {
		c, ok := s.timedRead()
		if !ok {
			break
		}
		buf[count] = c
		count++
	}

	return count
}

// ReadBytesUntil is ReadBytes that also stops at terminator. The terminator
// is consumed but not stored.
func (s *Stream) ReadBytesUntil(terminator byte, buf []byte) int {
	count := 0
	for count < len(buf) {
		c, ok := s.timedRead()
		if !ok || c == terminator {
			break
		}
		buf[count] = c
		count++
	}

	return count
}

// ReadString reads until the timeout expires and returns everything read.
func (s *Stream) ReadString() string {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	for {
		c, ok := s.timedRead()
		if !ok {
			break
		}
		buf.WriteByte(c)
	}

	return buf.String()
}

// ReadStringUntil reads until terminator or the timeout and returns what was
// read before it. The terminator is consumed but not returned.
func (s *Stream) ReadStringUntil(terminator byte) string {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	for {
		c, ok := s.timedRead()
		if !ok || c == terminator {
			break
		}
		buf.WriteByte(c)
	}

	return buf.String()
}
