package common

import "time"

// Clock abstracts time.Now so timers can be driven by tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current time, including its monotonic reading.
func (RealClock) Now() time.Time {
	return time.Now()
}

var _ Clock = RealClock{}
