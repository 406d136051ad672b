package source

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/arloliu/go-charstream/logger"
	"github.com/arloliu/go-charstream/stream"
)

// Conn is a byte source reading a net.Conn.
//
// Waiting is done with read deadlines on the connection, so no goroutine is
// involved. TryRead and TryPeek only return bytes already buffered; a stream
// fills the buffer through WaitAvailable.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader
	err    atomic.Pointer[error]
}

var (
	_ stream.Source = (*Conn)(nil)
	_ stream.Waiter = (*Conn)(nil)
)

// NewConn wraps conn. The Conn takes ownership of conn and closes it on Close.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

// DialConn connects to address on the named network and wraps the connection.
func DialConn(ctx context.Context, network string, address string) (*Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}

	return NewConn(conn), nil
}

// Available implements stream.Source.
func (c *Conn) Available() int { return c.reader.Buffered() }

// TryRead implements stream.Source.
func (c *Conn) TryRead() (byte, bool) {
	if c.reader.Buffered() == 0 {
		return 0, false
	}
	b, err := c.reader.ReadByte()

	return b, err == nil
}

// TryPeek implements stream.Source.
func (c *Conn) TryPeek() (byte, bool) {
	if c.reader.Buffered() == 0 {
		return 0, false
	}
	b, err := c.reader.Peek(1)
	if err != nil {
		return 0, false
	}

	return b[0], true
}

// WaitAvailable implements stream.Waiter. It returns false on timeout and,
// without waiting, once the connection has failed.
func (c *Conn) WaitAvailable(timeout time.Duration) bool {
	if c.reader.Buffered() > 0 {
		return true
	}
	if c.Err() != nil {
		return false
	}

	// A deadline can only be refused by a closed connection. The peek below
	// then fails at once and reports why, io.EOF for a closed peer.
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	_, err := c.reader.Peek(1)
	if err == nil {
		return true
	}

	if !errors.Is(err, os.ErrDeadlineExceeded) {
		if c.setErr(err) && !errors.Is(err, io.EOF) {
			logger.Warn("source: connection read failed", "remote", c.conn.RemoteAddr().String(), "error", err)
		}
	}

	return false
}

// Write sends p on the connection.
func (c *Conn) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

// Err returns the error that ended reading, such as io.EOF, or nil.
func (c *Conn) Err() error {
	if e := c.err.Load(); e != nil {
		return *e
	}

	return nil
}

// NetConn returns the wrapped connection.
func (c *Conn) NetConn() net.Conn { return c.conn }

// Close closes the connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// setErr records the first terminal error and reports whether err was it.
func (c *Conn) setErr(err error) bool {
	return c.err.CompareAndSwap(nil, &err)
}
