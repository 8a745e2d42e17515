// internal/gamestate/clock.go
//
// Reset clock: a once-a-minute wall-clock check that fires a callback when
// the reference-timezone calendar date changes. Per-request handlers do
// their own rollover check; the clock covers long-lived process state such
// as the catalog fallback snapshot.

package gamestate

import (
	"context"
	"time"

	"github.com/produceitem/feetdle/internal/daily"
)

// DefaultCheckInterval is how often the clock compares dates.
const DefaultCheckInterval = time.Minute

// Clock watches for date rollover in the reference timezone.
type Clock struct {
	loc        *time.Location
	interval   time.Duration
	onRollover func(newDateKey string)

	now  func() time.Time // injectable for tests
	last string
}

// NewClock builds a Clock firing onRollover once per date change.
func NewClock(loc *time.Location, onRollover func(string)) *Clock {
	return &Clock{
		loc:        loc,
		interval:   DefaultCheckInterval,
		onRollover: onRollover,
		now:        time.Now,
	}
}

// Run ticks until ctx is done. The first tick after a date change invokes
// the callback exactly once and records the new day.
func (c *Clock) Run(ctx context.Context) {
	c.last = daily.DateKey(c.now(), c.loc)
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.check()
		}
	}
}

// check performs one comparison; exposed to Run and to tests.
func (c *Clock) check() {
	key := daily.DateKey(c.now(), c.loc)
	if key == c.last {
		return
	}
	c.last = key
	if c.onRollover != nil {
		c.onRollover(key)
	}
}
