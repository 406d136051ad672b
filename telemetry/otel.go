package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/arloliu/go-charstream/stream"
)

// StreamAttrKey is the attribute holding the stream name on every
// observation.
const StreamAttrKey = "stream"

// Counter names exported by RegisterOTel.
const (
	BytesReadCounter = "charstream.bytes_read"
	TimeoutCounter   = "charstream.timeouts"
	FindCounter      = "charstream.finds"
	FindMatchCounter = "charstream.find_matches"
	ParseCounter     = "charstream.parses"
	ParseErrCounter  = "charstream.parse_errors"
)

type counterDef struct {
	name  string
	desc  string
	value func(m *stream.Metrics) uint64
}

var counterDefs = []counterDef{
	{BytesReadCounter, "Bytes consumed from the source", func(m *stream.Metrics) uint64 { return m.BytesRead.Load() }},
	{TimeoutCounter, "Timed reads and peeks that expired", func(m *stream.Metrics) uint64 { return m.TimeoutCount.Load() }},
	{FindCounter, "Search operations", func(m *stream.Metrics) uint64 { return m.FindCount.Load() }},
	{FindMatchCounter, "Search operations that matched their primary target", func(m *stream.Metrics) uint64 { return m.FindMatchCount.Load() }},
	{ParseCounter, "Numeric parse operations", func(m *stream.Metrics) uint64 { return m.ParseCount.Load() }},
	{ParseErrCounter, "Numeric parse operations without a value", func(m *stream.Metrics) uint64 { return m.ParseErrCount.Load() }},
}

// RegisterOTel creates one observable counter per stream metric on meter and
// reports every stream of reg on each collection, tagged with its name.
//
// Unregister the returned registration to stop reporting.
func RegisterOTel(meter metric.Meter, reg *Registry) (metric.Registration, error) {
	counters := make([]metric.Int64ObservableCounter, len(counterDefs))
	instruments := make([]metric.Observable, len(counterDefs))

	for i, def := range counterDefs {
		c, err := meter.Int64ObservableCounter(def.name,
			metric.WithDescription(def.desc),
			metric.WithUnit("1"),
		)
		if err != nil {
			return nil, err
		}
		counters[i] = c
		instruments[i] = c
	}

	return meter.RegisterCallback(
		func(_ context.Context, observer metric.Observer) error {
			reg.Range(func(name string, m *stream.Metrics) bool {
				attrs := metric.WithAttributes(attribute.String(StreamAttrKey, name))
				for i, def := range counterDefs {
					observer.ObserveInt64(counters[i], int64(def.value(m)), attrs) //nolint:gosec
				}

				return true
			})

			return nil
		},
		instruments...,
	)
}
