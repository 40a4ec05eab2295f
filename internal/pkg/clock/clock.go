// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/forgebound/crafting-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed implements Clock returning a preset time, for tests
type Fixed struct {
	time time.Time
}

// NewFixed returns a clock pinned to the given time
func NewFixed(t time.Time) *Fixed {
	return &Fixed{time: t}
}

// Now returns the preset time
func (c *Fixed) Now() time.Time {
	return c.time
}

// Advance moves the preset time forward
func (c *Fixed) Advance(d time.Duration) {
	c.time = c.time.Add(d)
}
