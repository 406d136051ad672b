package stream

import "time"

// Source is the byte source capability a Stream consumes.
//
// Implementations never block: TryRead and TryPeek report ok == false when no
// byte is currently available. The Stream owns all waiting.
type Source interface {
	// Available returns the number of bytes that can be read without waiting.
	// It is informational only.
	Available() int
	// TryRead consumes and returns the next byte.
	TryRead() (c byte, ok bool)
	// TryPeek returns the next byte without consuming it.
	TryPeek() (c byte, ok bool)
}

// Waiter is implemented by sources that can block until data arrives.
//
// When a Source also implements Waiter, timed operations sleep in
// WaitAvailable instead of polling the source.
type Waiter interface {
	// WaitAvailable blocks until at least one byte can be read, the timeout
	// elapses, or the source can no longer produce data. It reports whether a
	// byte is available.
	WaitAvailable(timeout time.Duration) bool
}
