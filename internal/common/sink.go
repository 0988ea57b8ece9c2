package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// Sink receives timer observations.
type Sink interface {
	Observe(label string, elapsed time.Duration)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(label string, elapsed time.Duration)

// Observe calls f.
func (f SinkFunc) Observe(label string, elapsed time.Duration) { f(label, elapsed) }

// NopSink discards observations.
type NopSink struct{}

// Observe does nothing.
func (NopSink) Observe(string, time.Duration) {}

// WriterSink prints "label: seconds" lines, one per observation.
type WriterSink struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriterSink creates a sink printing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Observe writes one line with the elapsed time in seconds.
func (s *WriterSink) Observe(label string, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, "%s: %s\n", label, strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
}

// LogSink emits one structured log record per observation.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSink creates a sink logging at level. A nil logger means slog.Default().
func NewLogSink(logger *slog.Logger, level slog.Level) *LogSink {
	return &LogSink{logger: logger, level: level}
}

// Observe logs a "timer" record with the label and elapsed time.
func (s *LogSink) Observe(label string, elapsed time.Duration) {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), s.level, "timer",
		slog.String("label", label),
		slog.Float64("elapsed_ms", float64(elapsed.Nanoseconds())/1e6),
		slog.Duration("elapsed", elapsed),
	)
}

// Observation is one recorded timer report.
type Observation struct {
	Label   string
	Elapsed time.Duration
}

// Recorder keeps every observation in arrival order. Safe for concurrent use.
type Recorder struct {
	mu           sync.Mutex
	observations []Observation
}

// Observe appends the observation.
func (r *Recorder) Observe(label string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = append(r.observations, Observation{Label: label, Elapsed: elapsed})
}

// Observations returns a copy of the recorded observations.
func (r *Recorder) Observations() []Observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Observation, len(r.observations))
	copy(out, r.observations)
	return out
}

// Durations returns the recorded durations for label, in order.
func (r *Recorder) Durations(label string) []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []time.Duration
	for _, o := range r.observations {
		if o.Label == label {
			out = append(out, o.Elapsed)
		}
	}
	return out
}

// Reset drops all observations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = nil
}

// MultiSink fans an observation out to every non-nil sink.
func MultiSink(sinks ...Sink) Sink {
	var out multiSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multiSink []Sink

// Observe forwards the observation to each sink in order.
func (m multiSink) Observe(label string, elapsed time.Duration) {
	for _, s := range m {
		s.Observe(label, elapsed)
	}
}
