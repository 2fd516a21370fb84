package mock

import "time"

// Clock always returns the time it was set to.
type Clock struct {
	Time time.Time
}

func NewClock(t time.Time) *Clock {
	return &Clock{Time: t}
}

func (t *Clock) Now() time.Time {
	return t.Time
}

func (t *Clock) Advance(d time.Duration) {
	t.Time = t.Time.Add(d)
}
