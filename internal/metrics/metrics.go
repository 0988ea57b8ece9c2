// Package metrics exports sort timings as Prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/MeKo-Tech/sortbench/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values for sortbench_sorts_total.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Sink is a common.Sink that records timer observations into Prometheus
// collectors registered on a caller-supplied registry.
type Sink struct {
	sortDuration *prometheus.HistogramVec
	sortsTotal   *prometheus.CounterVec
	inputSize    prometheus.Gauge
}

var _ common.Sink = (*Sink)(nil)

// NewSink creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewSink(reg prometheus.Registerer) *Sink {
	factory := promauto.With(reg)
	return &Sink{
		sortDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sortbench_sort_duration_seconds",
				Help:    "Wall-clock duration of a single sort in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs .. ~4.2s
			},
			[]string{"algorithm"},
		),
		sortsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortbench_sorts_total",
				Help: "Total number of sort invocations",
			},
			[]string{"algorithm", "status"},
		),
		inputSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sortbench_input_size",
				Help: "Number of elements in the current benchmark input",
			},
		),
	}
}

// Observe records one timed sort; label should be the algorithm name.
func (s *Sink) Observe(label string, elapsed time.Duration) {
	s.sortDuration.WithLabelValues(label).Observe(elapsed.Seconds())
}

// RecordSort counts a finished sort as ok or error.
func (s *Sink) RecordSort(algorithm string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	s.sortsTotal.WithLabelValues(algorithm, status).Inc()
}

// SetInputSize records the benchmark input length.
func (s *Sink) SetInputSize(n int) {
	s.inputSize.Set(float64(n))
}

// WriteTextfile writes everything g gathers to path in the Prometheus text
// exposition format, for node_exporter's textfile collector or a CI artifact.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
