package clock

import (
	"time"

	"lodge/shared/timezone"
)

// Clock is the time source injected into every service so that date
// comparisons, expiry checks, and late-fee math stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type appClock struct{}

func (appClock) Now() time.Time {
	return timezone.Now()
}

func New() Clock {
	return appClock{}
}
