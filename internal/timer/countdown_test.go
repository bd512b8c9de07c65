package timer

import (
	"testing"
	"time"
)

func TestCountdownExpires(t *testing.T) {
	var ticks []int
	c := NewCountdown(1, func(remaining int) { ticks = append(ticks, remaining) })
	c.Start()

	select {
	case <-c.Expired():
	case <-time.After(3 * time.Second):
		t.Fatal("countdown did not expire")
	}

	if len(ticks) == 0 || ticks[0] != 1 {
		t.Errorf("ticks = %v, want first tick with full remaining time", ticks)
	}
}

func TestCountdownStop(t *testing.T) {
	c := NewCountdown(1, nil)
	c.Start()
	c.Stop()
	c.Stop() // idempotent

	select {
	case <-c.Expired():
		t.Fatal("stopped countdown still expired")
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestCountdownElapsed(t *testing.T) {
	c := NewCountdown(5, nil)
	c.Start()
	defer c.Stop()

	time.Sleep(50 * time.Millisecond)
	if e := c.Elapsed(); e < 0.04 || e > 2 {
		t.Errorf("Elapsed() = %v, want roughly 0.05s", e)
	}
}
