// Package clock provides the time source for the treasury. Local chains can
// be warped forward, the way a dev node's time-increase call does.
package clock

import (
	"time"

	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// OffsetClock is the wall clock shifted by the chain state's time offset
type OffsetClock struct {
	state *models.ChainState
	now   func() time.Time
}

// NewOffsetClock creates a clock reading state's offset on every call
func NewOffsetClock(state *models.ChainState) *OffsetClock {
	return &OffsetClock{state: state, now: time.Now}
}

// Now returns the current chain time
func (c *OffsetClock) Now() time.Time {
	return c.now().Add(c.state.TimeOffset).UTC()
}

// Warp moves chain time forward by d. Time never moves backwards.
func (c *OffsetClock) Warp(d time.Duration) time.Time {
	if d > 0 {
		c.state.TimeOffset += d
	}
	return c.Now()
}
