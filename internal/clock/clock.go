// Package clock is a frame-driven scheduler. The game loop advances it once
// per Update, so callbacks run on the loop goroutine and never race with
// input handlers. Tests advance it by hand.
package clock

import "time"

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// Clock tracks elapsed time and fires one-shot callbacks when it passes
// their deadline.
type Clock struct {
	now    time.Duration
	seq    uint64
	timers []timer
}

func New() *Clock {
	return &Clock{}
}

// Now returns the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules fn to run once d has elapsed. There is no way to
// cancel it.
func (c *Clock) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	c.seq++
	c.timers = append(c.timers, timer{at: c.now + d, seq: c.seq, fn: fn})
}

// Pending returns the number of callbacks not yet fired.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Advance moves the clock forward and fires every due callback in deadline
// order. Callbacks scheduled by a callback fire in the same call if due.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
	for {
		due := -1
		for i, t := range c.timers {
			if t.at > c.now {
				continue
			}
			if due < 0 || t.at < c.timers[due].at || (t.at == c.timers[due].at && t.seq < c.timers[due].seq) {
				due = i
			}
		}
		if due < 0 {
			return
		}
		fn := c.timers[due].fn
		c.timers = append(c.timers[:due], c.timers[due+1:]...)
		fn()
	}
}

// AdvanceSeconds is Advance for the float delta the game loop works with.
func (c *Clock) AdvanceSeconds(dt float64) {
	c.Advance(time.Duration(dt * float64(time.Second)))
}
