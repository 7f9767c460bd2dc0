package kernel

import "time"

// Clock supplies "now" to aggregates and handlers so timestamps can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the server's local time zone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
