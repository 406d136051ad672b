package source

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arloliu/go-charstream/internal/pool"
	"github.com/arloliu/go-charstream/internal/queue"
	"github.com/arloliu/go-charstream/internal/util"
	"github.com/arloliu/go-charstream/stream"
)

// Pipe is a byte source fed by producers through Write.
//
// Writes are copied and queued without locking, so any number of goroutines
// may write while a single consumer reads. Pipe implements stream.Waiter: a
// stream blocked on an empty Pipe wakes up as soon as a write lands.
type Pipe struct {
	chunks queue.Queue[[]byte]
	head   []byte // chunk being consumed, owned by the consumer

	avail  atomic.Int64
	notify chan struct{}

	closed    atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
	err       atomic.Pointer[error]
}

var (
	_ stream.Source  = (*Pipe)(nil)
	_ stream.Waiter  = (*Pipe)(nil)
	_ io.WriteCloser = (*Pipe)(nil)
)

// NewPipe creates an empty Pipe.
func NewPipe() *Pipe {
	return &Pipe{
		chunks: queue.NewLockFreeQueue[[]byte](),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Write queues a copy of p. It returns ErrClosed after Close.
func (p *Pipe) Write(b []byte) (int, error) {
	if p.closed.Load() {
		return 0, ErrClosed
	}
	if len(b) == 0 {
		return 0, nil
	}

	p.avail.Add(int64(len(b)))
	p.chunks.Enqueue(util.CloneSlice(b, 0))

	select {
	case p.notify <- struct{}{}:
	default:
	}

	return len(b), nil
}

// Available implements stream.Source.
func (p *Pipe) Available() int {
	return int(max(p.avail.Load(), 0))
}

// TryRead implements stream.Source.
func (p *Pipe) TryRead() (byte, bool) {
	if !p.fill() {
		return 0, false
	}

	c := p.head[0]
	p.head = p.head[1:]
	p.avail.Add(-1)

	return c, true
}

// TryPeek implements stream.Source.
func (p *Pipe) TryPeek() (byte, bool) {
	if !p.fill() {
		return 0, false
	}

	return p.head[0], true
}

// WaitAvailable implements stream.Waiter. It returns false when the timeout
// elapses or the pipe is closed and drained.
func (p *Pipe) WaitAvailable(timeout time.Duration) bool {
	if p.fill() {
		return true
	}
	if p.closed.Load() {
		return p.fill()
	}

	timer := pool.GetTimer(timeout)
	defer pool.PutTimer(timer)

	for {
		select {
		case <-p.notify:
			if p.fill() {
				return true
			}
		case <-p.done:
			return p.fill()
		case <-timer.C:
			return p.fill()
		}
	}
}

// Close stops accepting writes. Queued bytes stay readable.
func (p *Pipe) Close() error {
	return p.CloseWithError(nil)
}

// CloseWithError closes the pipe and records err as the reason the producer
// stopped. Only the first call has an effect.
func (p *Pipe) CloseWithError(err error) error {
	p.closeOnce.Do(func() {
		if err != nil {
			p.err.Store(&err)
		}
		p.closed.Store(true)
		close(p.done)
	})

	return nil
}

// Closed reports whether the pipe was closed.
func (p *Pipe) Closed() bool {
	return p.closed.Load()
}

// Err returns the error passed to CloseWithError, or nil.
func (p *Pipe) Err() error {
	if e := p.err.Load(); e != nil {
		return *e
	}

	return nil
}

// fill makes head non-empty if any queued byte exists.
func (p *Pipe) fill() bool {
	for len(p.head) == 0 {
		chunk, ok := p.chunks.Dequeue()
		if !ok {
			return false
		}
		p.head = chunk
	}

	return true
}
