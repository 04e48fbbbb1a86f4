package scraper

import (
	"time"

	"golang.org/x/time/rate"
)

// PageLimiter builds the politeness limiter spacing sequential page fetches.
// delay <= 0 selects def; the effective delay never drops below floor. The
// first wait passes immediately, later waits block for the full interval.
func PageLimiter(delay, def, floor float64) *rate.Limiter {
	if delay <= 0 {
		delay = def
	}
	if delay < floor {
		delay = floor
	}
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Duration(delay*float64(time.Second))), 1)
}
