// Package timer provides the per-question countdown used by the terminal
// quiz loop. A Countdown ticks once per second for display purposes and
// closes its Expired channel when the allotted time runs out.
package timer

import (
	"sync"
	"time"
)

type Countdown struct {
	seconds int
	onTick  func(remaining int)

	expired  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once

	started time.Time
}

// NewCountdown creates a countdown of the given number of seconds. onTick
// may be nil; when set it is called with the remaining seconds after each
// elapsed second, starting with the full amount before the first tick.
func NewCountdown(seconds int, onTick func(remaining int)) *Countdown {
	return &Countdown{
		seconds: seconds,
		onTick:  onTick,
		expired: make(chan struct{}),
		stop:    make(chan struct{}),
	}
}

// Start begins the countdown. It must be called exactly once.
func (c *Countdown) Start() {
	c.started = time.Now()
	if c.onTick != nil {
		c.onTick(c.seconds)
	}
	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	remaining := c.seconds
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			remaining--
			if remaining <= 0 {
				close(c.expired)
				return
			}
			if c.onTick != nil {
				c.onTick(remaining)
			}
		}
	}
}

// Expired is closed when the countdown runs out without being stopped.
func (c *Countdown) Expired() <-chan struct{} {
	return c.expired
}

// Stop cancels the countdown. Safe to call more than once, and safe to
// call after expiry.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Elapsed reports the time since Start in seconds.
func (c *Countdown) Elapsed() float64 {
	return time.Since(c.started).Seconds()
}
