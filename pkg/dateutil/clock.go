package dateutil

import "time"

// Clock abstracts the wall clock so that domain services never read time
// directly. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

func NewFixedClock(now time.Time) Clock {
	return fixedClock{now: now}
}

func (c fixedClock) Now() time.Time {
	return c.now
}
