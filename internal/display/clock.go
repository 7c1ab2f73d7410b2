package display

import "time"

// Clock paces a loop to a target tick rate. Tick sleeps for whatever is left
// of the frame budget since the previous Tick and returns the time elapsed
// between the two ticks.
type Clock struct {
	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now, sleep: time.Sleep}
}

func (c *Clock) Tick(fps int) time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	if fps > 0 {
		budget := time.Second / time.Duration(fps)
		if spent := now.Sub(c.last); spent < budget {
			c.sleep(budget - spent)
			now = c.now()
		}
	}

	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}
