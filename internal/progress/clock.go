package progress

import (
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day, YYYY-MM-DD.
type Day string

func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

type Clock interface {
	// Now returns the current time in the clock's location.
	Now() time.Time
	Today() Day
}

var _ Clock = (*SystemClock)(nil)

type SystemClock struct {
	Location *time.Location
}

func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return &SystemClock{Location: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.Location)
}

func (c *SystemClock) Today() Day {
	return DayOf(c.Now())
}

var _ Clock = (*FixedClock)(nil)

// FixedClock only moves when told to; used in tests and offline tools.
type FixedClock struct {
	mutex sync.Mutex
	now   time.Time
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

func (c *FixedClock) Today() Day {
	return DayOf(c.Now())
}

func (c *FixedClock) Set(now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = now
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(d)
}
