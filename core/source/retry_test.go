package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"media-orbit/core/source"

	"github.com/stretchr/testify/assert"
)

type sleepRecorder struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *sleepRecorder) Now() time.Time { return c.now }
func (c *sleepRecorder) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	clk := &sleepRecorder{now: time.Unix(0, 0)}
	calls := 0

	err := source.Retry(context.Background(), clk, 3, time.Second, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, clk.sleeps)
}

func TestRetryReturnsLastError(t *testing.T) {
	clk := &sleepRecorder{now: time.Unix(0, 0)}
	boom := errors.New("still down")

	err := source.Retry(context.Background(), clk, 2, time.Second, func() error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Len(t, clk.sleeps, 1)
}

func TestRetryHonorsContext(t *testing.T) {
	clk := &sleepRecorder{now: time.Unix(0, 0)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := source.Retry(ctx, clk, 5, time.Second, func() error {
		calls++
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "no retry after cancellation")
}
