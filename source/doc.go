// Package source provides byte sources that a stream.Stream can parse from.
//
// Buffer is an in-memory source for tests and replay. Pipe is the building
// block for push-based producers: Reader, WebSocket, NATS and Command pump
// their input into a Pipe so the stream can block in WaitAvailable instead
// of polling. Conn reads a net.Conn directly with read deadlines.
//
// All sources are safe for one consuming goroutine. Producers of a Pipe may
// write from any goroutine.
package source

import "errors"

// ErrClosed is returned when writing to a closed source.
var ErrClosed = errors.New("source: closed")
