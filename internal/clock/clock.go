package clock

import (
	"fmt"
	"time"
)

// Clock provides time operations that can be pinned for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant
type FixedClock struct {
	At time.Time
}

// Fixed creates a FixedClock at t
func Fixed(t time.Time) *FixedClock {
	return &FixedClock{At: t}
}

// FixedDate creates a FixedClock at midnight UTC of a YYYY-MM-DD date
func FixedDate(date string) (*FixedClock, error) {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", date, err)
	}
	return Fixed(t.UTC()), nil
}

// Now returns the pinned time
func (c *FixedClock) Now() time.Time {
	return c.At
}
