package service

import "time"

// Clock abstracts wall-clock access so the time-gated visit stage can be
// tested deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock.
type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
