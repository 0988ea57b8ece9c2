// Package common provides the scoped timer, its observation sinks and
// shared measurement helpers.
package common

import (
	"fmt"
	"time"
)

// Timer measures the wall-clock time of one lexical scope and reports it,
// under its label, to a Sink. Open it with Begin and release it with a
// deferred Stop; only the first Stop reports.
type Timer struct {
	start    time.Time
	name     string
	duration time.Duration
	clock    Clock
	sink     Sink
	stopped  bool
}

// Begin starts a timer labeled label that reports to sink on Stop.
// A nil sink discards the observation.
func Begin(label string, sink Sink) *Timer {
	return BeginWithClock(label, sink, RealClock{})
}

// BeginWithClock is Begin with an explicit clock.
func BeginWithClock(label string, sink Sink, clock Clock) *Timer {
	if sink == nil {
		sink = NopSink{}
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Timer{
		name:  label,
		start: clock.Now(),
		clock: clock,
		sink:  sink,
	}
}

// NewNamedTimer creates a running timer with the given name and no sink.
func NewNamedTimer(name string) *Timer {
	return Begin(name, nil)
}

// Stop records the elapsed duration and reports it to the sink. Calls after
// the first return the recorded duration without reporting again.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return t.duration
	}
	t.stopped = true
	t.duration = max(t.clock.Now().Sub(t.start), 0)
	t.sink.Observe(t.name, t.duration)
	return t.duration
}

// Duration returns the recorded duration (only valid after Stop()).
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Name returns the timer label.
func (t *Timer) Name() string {
	return t.name
}

// Stopped reports whether Stop has been called.
func (t *Timer) Stopped() bool {
	return t.stopped
}

// String returns a formatted string representation of the timer.
func (t *Timer) String() string {
	if t.name != "" {
		return fmt.Sprintf("%s: %v", t.name, t.duration)
	}
	return fmt.Sprintf("%v", t.duration)
}

// Measure runs fn inside a timer scope labeled label. The observation
// reaches sink before Measure returns fn's error, and also when fn panics;
// the panic then continues unwinding.
func Measure(label string, sink Sink, fn func() error) error {
	t := Begin(label, sink)
	defer t.Stop()
	return fn()
}
