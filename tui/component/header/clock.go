package header

import "time"

// elapsedClock measures monitoring time, excluding time spent paused.
type elapsedClock struct {
	start       time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
}

func newElapsedClock(start time.Time) elapsedClock {
	return elapsedClock{start: start}
}

func (c *elapsedClock) pause(now time.Time) {
	if c.pausedAt.IsZero() {
		c.pausedAt = now
	}
}

func (c *elapsedClock) resume(now time.Time) {
	if c.pausedAt.IsZero() {
		return
	}
	c.pausedTotal += now.Sub(c.pausedAt)
	c.pausedAt = time.Time{}
}

func (c elapsedClock) elapsed(now time.Time) time.Duration {
	if !c.pausedAt.IsZero() {
		now = c.pausedAt
	}
	d := now.Sub(c.start) - c.pausedTotal
	if d < 0 {
		return 0
	}
	return d
}
