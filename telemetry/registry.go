// Package telemetry collects the metrics of named streams and exports them
// through OpenTelemetry.
package telemetry

import (
	"errors"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-charstream/stream"
)

var (
	// ErrEmptyName is returned when a stream is registered without a name.
	ErrEmptyName = errors.New("telemetry: stream name is empty")
	// ErrDuplicateName is returned when the name is already registered.
	ErrDuplicateName = errors.New("telemetry: stream name already registered")
)

// Registry maps stream names to their metrics. It is safe for concurrent use.
type Registry struct {
	metrics *xsync.MapOf[string, *stream.Metrics]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{metrics: xsync.NewMapOf[string, *stream.Metrics]()}
}

// Register adds the metrics m under name.
func (r *Registry) Register(name string, m *stream.Metrics) error {
	if name == "" {
		return ErrEmptyName
	}
	if m == nil {
		return fmt.Errorf("telemetry: metrics of %q are nil", name)
	}

	if _, loaded := r.metrics.LoadOrStore(name, m); loaded {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	return nil
}

// Add registers the metrics of s under its name.
func (r *Registry) Add(s *stream.Stream) error {
	return r.Register(s.Name(), s.GetMetrics())
}

// Unregister removes name. It is a no-op for unknown names.
func (r *Registry) Unregister(name string) {
	r.metrics.Delete(name)
}

// Get returns the metrics registered under name.
func (r *Registry) Get(name string) (*stream.Metrics, bool) {
	return r.metrics.Load(name)
}

// Len returns the number of registered streams.
func (r *Registry) Len() int {
	return r.metrics.Size()
}

// Range calls fn for each registered stream until fn returns false.
func (r *Registry) Range(fn func(name string, m *stream.Metrics) bool) {
	r.metrics.Range(fn)
}
