package core

import (
	"time"
)

// NewTime creates a new time service, its clock starts immediately
func NewTime() *Time {
	return &Time{
		start: time.Now(),
	}
}

// Time measures the time elapsed since the viewer started,
// it's the source of the iTime uniform and frame timestamps
type Time struct {
	start time.Time
}

// Elapsed implements Clock
func (t *Time) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Start returns the moment the clock was started
func (t *Time) Start() time.Time {
	return t.start
}
