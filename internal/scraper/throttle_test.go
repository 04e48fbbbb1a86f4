package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestPageLimiter(t *testing.T) {
	every := func(seconds float64) rate.Limit {
		return rate.Every(time.Duration(seconds * float64(time.Second)))
	}

	tests := []struct {
		name  string
		delay float64
		def   float64
		floor float64
		want  rate.Limit
	}{
		{"explicit delay", 2.0, 1.2, 0.5, every(2.0)},
		{"zero falls back to default", 0, 1.2, 0.5, every(1.2)},
		{"negative falls back to default", -1, 1.1, 0, every(1.1)},
		{"floor raises low delay", 0.1, 1.2, 0.5, every(0.5)},
		{"no floor keeps low delay", 0.1, 1.2, 0, every(0.1)},
		{"all zero is unlimited", 0, 0, 0, rate.Inf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lim := PageLimiter(tt.delay, tt.def, tt.floor)
			assert.Equal(t, tt.want, lim.Limit())
			assert.Equal(t, 1, lim.Burst())
		})
	}
}

func TestPageLimiterFirstWaitIsFree(t *testing.T) {
	lim := PageLimiter(60, 0, 0)
	require.True(t, lim.Allow(), "first page should not wait")
	assert.False(t, lim.Allow(), "second page should be spaced out")
}
