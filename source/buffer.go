package source

import (
	"sync"

	"github.com/arloliu/go-charstream/stream"
)

// compactThreshold is the consumed prefix size after which Buffer reclaims
// the space on the next write.
const compactThreshold = 4096

// Buffer is an in-memory byte source. Bytes written to it become readable
// immediately. It does not implement stream.Waiter, so a stream polls it.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	off    int
	closed bool
}

var _ stream.Source = (*Buffer)(nil)

// NewBuffer returns a Buffer holding a copy of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

// NewBufferString returns a Buffer holding s.
func NewBufferString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// Write appends p to the buffer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	if b.off >= compactThreshold && b.off*2 >= len(b.data) {
		n := copy(b.data, b.data[b.off:])
		b.data = b.data[:n]
		b.off = 0
	}
	b.data = append(b.data, p...)

	return len(p), nil
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// Available implements stream.Source.
func (b *Buffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.data) - b.off
}

// TryRead implements stream.Source.
func (b *Buffer) TryRead() (byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.off >= len(b.data) {
		return 0, false
	}
	c := b.data[b.off]
	b.off++

	return c, true
}

// TryPeek implements stream.Source.
func (b *Buffer) TryPeek() (byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.off >= len(b.data) {
		return 0, false
	}

	return b.data[b.off], true
}

// String returns the unread bytes.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return string(b.data[b.off:])
}

// Reset discards all bytes.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data = b.data[:0]
	b.off = 0
}

// Close rejects further writes. Unread bytes stay readable.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true

	return nil
}
