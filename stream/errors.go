package stream

import "errors"

var (
	// ErrTimeout indicates that no byte arrived before the deadline.
	ErrTimeout = errors.New("stream: timeout")

	// ErrNoNumber indicates that the lookahead policy rejected the next byte,
	// or that the numeric token held no digit (e.g. a lone "-").
	ErrNoNumber = errors.New("stream: no numeric value")

	// ErrSourceNil indicates that a nil Source was passed to New.
	ErrSourceNil = errors.New("stream: source is nil")
)
