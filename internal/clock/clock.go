// Package clock schedules the deferred transitions of the game engines.
//
// Engines never block: they hand a callback and a delay to a Scheduler and
// return. Implementations must run every callback on the same execution
// context that drives the engines, one callback at a time.
package clock

import "time"

// Scheduler runs fn once after delay has elapsed.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(delay time.Duration, fn func())

func (f SchedulerFunc) Schedule(delay time.Duration, fn func()) {
	f(delay, fn)
}
