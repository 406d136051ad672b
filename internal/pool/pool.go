// Package pool recycles the short-lived objects created by every timed
// stream operation: wait timers and string builders.
package pool

import (
	"bytes"
	"sync"
	"time"
)

// maxPooledBufferSize bounds the capacity of buffers kept by the pool so one
// huge ReadString result does not pin its memory.
const maxPooledBufferSize = 64 * 1024

var (
	timerPool  sync.Pool
	bufferPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}
)

// GetTimer returns a timer that fires after d. Release it with PutTimer.
//
// Since Go 1.23 Reset discards any value left in the channel, so a recycled
// timer never delivers a stale expiry.
func GetTimer(d time.Duration) *time.Timer {
	if t, ok := timerPool.Get().(*time.Timer); ok {
		t.Reset(d)
		return t
	}

	return time.NewTimer(d)
}

// PutTimer stops t and returns it to the pool. t cannot be used afterwards.
func PutTimer(t *time.Timer) {
	t.Stop()
	timerPool.Put(t)
}

// GetBuffer returns an empty buffer. Release it with PutBuffer.
func GetBuffer() *bytes.Buffer {
	buf, _ := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	return buf
}

// PutBuffer returns buf to the pool unless it grew beyond
// maxPooledBufferSize. buf cannot be used afterwards.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	bufferPool.Put(buf)
}
