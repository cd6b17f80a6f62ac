// Package dates provides the timestamps written in front of every record.
//
// Timestamps use a fixed layout with microsecond precision so that records
// sort lexicographically in the order they were written:
//
//	2024-05-01 09:04:05.012345
package dates

import (
	"sync"
	"time"
)

// Layout is the record timestamp layout
const Layout = "2006-01-02 15:04:05.000000"

// Now returns the current time
var Now = time.Now

// Format formats t with Layout
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Clock hands out timestamps that never go backwards, even when the wall
// clock is adjusted between two calls.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewClock returns a Clock reading time from now. A nil now uses Now.
func NewClock(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Time returns the current time, or the previous one when the clock moved
// backwards.
func (c *Clock) Time() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	if now == nil {
		now = Now
	}
	t := now()
	if t.Before(c.last) {
		return c.last
	}
	c.last = t
	return t
}

// Stamp returns Time formatted with Layout
func (c *Clock) Stamp() string {
	return Format(c.Time())
}
