package source

import (
	"errors"
	"io"
	"time"

	"github.com/arloliu/go-charstream/logger"
	"github.com/arloliu/go-charstream/stream"
)

// DefaultReadSize is the chunk size Reader requests from its io.Reader.
const DefaultReadSize = 4096

// Reader adapts an io.Reader into a byte source.
//
// A goroutine reads r in chunks and queues the data, so the consuming stream
// never blocks inside r.Read and its timeout stays exact.
type Reader struct {
	pipe *Pipe
	r    io.Reader
	done chan struct{}
}

var (
	_ stream.Source = (*Reader)(nil)
	_ stream.Waiter = (*Reader)(nil)
)

// NewReader starts reading r with DefaultReadSize chunks.
func NewReader(r io.Reader) *Reader {
	return NewReaderSize(r, DefaultReadSize)
}

// NewReaderSize starts reading r with chunks of up to size bytes.
func NewReaderSize(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultReadSize
	}

	rd := &Reader{
		pipe: NewPipe(),
		r:    r,
		done: make(chan struct{}),
	}
	go rd.pump(size)

	return rd
}

func (rd *Reader) pump(size int) {
	defer close(rd.done)

	buf := make([]byte, size)
	for {
		n, err := rd.r.Read(buf)
		if n > 0 {
			if _, werr := rd.pipe.Write(buf[:n]); werr != nil {
				return
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			} else if !rd.pipe.Closed() {
				logger.Warn("source: read failed", "error", err)
			}
			_ = rd.pipe.CloseWithError(err)

			return
		}
	}
}

// Available implements stream.Source.
func (rd *Reader) Available() int { return rd.pipe.Available() }

// TryRead implements stream.Source.
func (rd *Reader) TryRead() (byte, bool) { return rd.pipe.TryRead() }

// TryPeek implements stream.Source.
func (rd *Reader) TryPeek() (byte, bool) { return rd.pipe.TryPeek() }

// WaitAvailable implements stream.Waiter.
func (rd *Reader) WaitAvailable(timeout time.Duration) bool {
	return rd.pipe.WaitAvailable(timeout)
}

// Done is closed when the underlying reader has returned its final error.
func (rd *Reader) Done() <-chan struct{} { return rd.done }

// Err returns the terminal read error, or nil while reading or after io.EOF.
func (rd *Reader) Err() error { return rd.pipe.Err() }

// Close closes the underlying reader if it is an io.Closer and stops
// queueing further input. Bytes already queued stay readable.
//
// If the underlying reader cannot be closed, the reading goroutine exits on
// its next Read return.
func (rd *Reader) Close() error {
	var err error
	if c, ok := rd.r.(io.Closer); ok {
		err = c.Close()
	}
	_ = rd.pipe.Close()

	return err
}
