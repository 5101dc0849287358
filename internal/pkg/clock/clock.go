package clock

import "time"

// Clock abstracts the current time so timestamps written by usecases are
// controllable in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the real current time in UTC. All persisted
// timestamps are UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock is a controllable clock for tests.
type FakeClock struct {
	now time.Time
}

// NewFake creates a FakeClock set to the given time (expected in UTC).
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (f *FakeClock) Now() time.Time {
	return f.now
}

// Set moves the fake clock to a specific time.
func (f *FakeClock) Set(t time.Time) {
	f.now = t
}

// Advance moves the fake clock forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
