package search

import (
	"fmt"
	"sync/atomic"
)

// Counters accumulates skip statistics across searches. The increments are
// atomic, so a matcher sharing one Counters value stays safe for concurrent
// searches. All methods on a nil *Counters are no-ops; nil is the disabled
// default.
type Counters struct {
	lookups    atomic.Int64
	compares   atomic.Int64
	totalShift atomic.Int64
}

func (c *Counters) record(skip int64) {
	if c == nil {
		return
	}
	c.lookups.Add(1)
	c.totalShift.Add(skip)
	if skip == 0 {
		c.compares.Add(1)
	}
}

// String reports the full-comparison rate and average shift distance since
// the last call, then resets the counters. It returns the empty string when
// no lookups were recorded.
func (c *Counters) String() string {
	if c == nil {
		return ""
	}
	lookups := c.lookups.Swap(0)
	compares := c.compares.Swap(0)
	total := c.totalShift.Swap(0)
	if lookups == 0 {
		return ""
	}
	compareRate := float64(compares) * 100 / float64(lookups)
	avgShift := float64(total) / float64(lookups)
	return fmt.Sprintf("compare rate: %5.2f; avg shift=%5.2f", compareRate, avgShift)
}
