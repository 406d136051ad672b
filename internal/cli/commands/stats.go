package commands

import (
	"context"
	"fmt"
	"io"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/arloliu/go-charstream/stream"
	"github.com/arloliu/go-charstream/telemetry"
)

// printStats collects the counters of s through the OpenTelemetry SDK and
// writes one "name value" line per counter to w.
func printStats(ctx context.Context, w io.Writer, s *stream.Stream) error {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(ctx) }()

	reg := telemetry.NewRegistry()
	if err := reg.Add(s); err != nil {
		return err
	}
	if _, err := telemetry.RegisterOTel(provider.Meter("charscan"), reg); err != nil {
		return err
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return err
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				_, _ = fmt.Fprintf(w, "%-24s %d\n", m.Name, dp.Value)
			}
		}
	}

	return nil
}
