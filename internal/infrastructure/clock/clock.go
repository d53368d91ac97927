// Package clock narrows clockwork to the two things the workflow needs:
// reading the time and running a callback after a delay.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source used for timestamps.
type Clock interface {
	Now() time.Time
}

// Cancel stops a scheduled task. It reports whether the task was stopped
// before it ran.
type Cancel func() bool

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Cancel
}

var wall = clockwork.NewRealClock()

// System is the wall clock.
type System struct{}

var (
	_ Clock     = System{}
	_ Scheduler = System{}
)

func (System) Now() time.Time {
	return wall.Now().UTC()
}

func (System) AfterFunc(d time.Duration, f func()) Cancel {
	return wall.AfterFunc(d, f).Stop
}
