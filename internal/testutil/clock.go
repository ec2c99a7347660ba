package testutil

import (
	"sync"
	"time"
)

// FakeClock is a manually driven time source. It satisfies quiz.Clock and its
// Now method value fits the UI Options.Now hooks.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeClock starts a FakeClock at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

// Now reports the fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	t := c.current
	c.mu.Unlock()
	return t
}

// Advance moves the fake time forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.current = c.current.Add(d)
	t := c.current
	c.mu.Unlock()
	return t
}
