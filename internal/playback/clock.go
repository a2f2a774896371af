package playback

import "time"

// Clock abstracts timers so playback can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

// RealClock returns a Clock backed by the time package.
func RealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// ScaledClock speeds up (factor > 1) or slows down every wait of the wrapped clock.
type ScaledClock struct {
	Base   Clock
	Factor float64
}

// Now returns the wrapped clock's time.
func (c ScaledClock) Now() time.Time { return c.base().Now() }

// After waits d divided by Factor.
func (c ScaledClock) After(d time.Duration) <-chan time.Time {
	if c.Factor > 0 {
		d = time.Duration(float64(d) / c.Factor)
	}
	return c.base().After(d)
}

func (c ScaledClock) base() Clock {
	if c.Base == nil {
		return realClock{}
	}
	return c.Base
}
