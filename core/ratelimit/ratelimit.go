package ratelimit

import (
	"sync"
	"time"

	"media-orbit/core/clock"
)

// Limiter enforces a minimum interval between consecutive requests by
// blocking the caller until the interval since the last request has elapsed.
// It is a leaky bucket of capacity one.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	clock    clock.Clock
	last     time.Time
}

// New creates a Limiter with the given minimum inter-request interval.
// A nil clk defaults to the system clock.
func New(interval time.Duration, clk clock.Clock) *Limiter {
	if clk == nil {
		clk = clock.New()
	}
	return &Limiter{
		interval: interval,
		clock:    clk,
	}
}

// Wait blocks until the interval since the previous Wait has elapsed, then
// records the current time as the new reference point. The first call never
// blocks.
func (l *Limiter) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if !l.last.IsZero() {
		if elapsed := now.Sub(l.last); elapsed < l.interval {
			l.clock.Sleep(l.interval - elapsed)
			now = l.clock.Now()
		}
	}
	l.last = now
}
