package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Frozen always reports the instant it was created with.
// An execution unit reads its clock once and compares every time bound against that value.
type Frozen struct {
	at time.Time
}

func Freeze(c Clock) Frozen {
	return Frozen{at: c.Now().Truncate(time.Second)}
}

// At freezes an instant that was already read from a clock.
func At(t time.Time) Frozen {
	return Frozen{at: t}
}

func (f Frozen) Now() time.Time {
	return f.at
}

func (f Frozen) Unix() int64 {
	return f.at.Unix()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
