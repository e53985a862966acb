package guuid

import "time"

// Clock supplies the time points stamped into time-ordered UUIDs.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the host wall clock.
var SystemClock Clock = ClockFunc(time.Now)
