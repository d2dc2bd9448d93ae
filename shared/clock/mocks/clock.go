package mocks

import (
	"time"

	"lodge/shared/clock"
)

type fixedClock struct {
	now time.Time
}

// Now implements clock.Clock.
func (c *fixedClock) Now() time.Time {
	return c.now
}

// NewFixed returns a clock pinned to the given instant.
func NewFixed(now time.Time) clock.Clock {
	return &fixedClock{now: now}
}
