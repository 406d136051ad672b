package stream

import (
	"sync/atomic"
)

// Metrics contains atomic counters of a Stream.
// Metrics can be used as the value of a prometheus CounterFunc or exported with
// the telemetry package.
type Metrics struct {
	// BytesRead indicates the number of bytes consumed from the source.
	BytesRead atomic.Uint64
	// TimeoutCount indicates the number of timed reads and peeks that expired.
	TimeoutCount atomic.Uint64

	// FindCount indicates the number of search operations.
	FindCount atomic.Uint64
	// FindMatchCount indicates the number of search operations that matched
	// their primary target.
	FindMatchCount atomic.Uint64

	// ParseCount indicates the number of numeric parse operations.
	ParseCount atomic.Uint64
	// ParseErrCount indicates the number of numeric parse operations that
	// produced no value.
	ParseErrCount atomic.Uint64
}

func (m *Metrics) incBytesRead() {
	m.BytesRead.Add(1)
}

func (m *Metrics) incTimeoutCount() {
	m.TimeoutCount.Add(1)
}

func (m *Metrics) incFindCount() {
	m.FindCount.Add(1)
}

func (m *Metrics) incFindMatchCount() {
	m.FindMatchCount.Add(1)
}

func (m *Metrics) incParseCount() {
	m.ParseCount.Add(1)
}

func (m *Metrics) incParseErrCount() {
	m.ParseErrCount.Add(1)
}
