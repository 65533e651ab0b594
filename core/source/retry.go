package source

import (
	"context"
	"fmt"
	"time"

	"media-orbit/core/clock"
)

// Retry runs fn up to attempts times, sleeping between tries with an
// exponentially growing delay (initial, 2*initial, 4*initial, ...). It
// returns nil on the first success and the last error otherwise. The
// context is checked before every retry so callers can abort a pass.
func Retry(ctx context.Context, clk clock.Clock, attempts int, initial time.Duration, fn func() error) error {
	if clk == nil {
		clk = clock.New()
	}
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := initial
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("retry aborted: %w", ctxErr)
		}
		clk.Sleep(delay)
		delay *= 2
	}
	return err
}
