package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"media-orbit/core/clock"

	"go.uber.org/zap"
)

// Job is a recurring task with a fixed daily wall-clock trigger.
type Job struct {
	// Name identifies the job in logs and in the last-run table.
	Name string
	// Hour and Minute form the daily trigger time in the scheduler's
	// local time zone.
	Hour   int
	Minute int
	// Run executes the job. Errors are logged, never fatal.
	Run func(ctx context.Context) error
}

// ParseTrigger parses an "HH:MM" trigger string.
func ParseTrigger(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid trigger %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid trigger hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid trigger minute in %q", s)
	}
	return hour, minute, nil
}

// Scheduler polls a fixed job table and runs every job whose daily trigger
// time has arrived. A job fires at most once per day.
type Scheduler struct {
	jobs     []Job
	interval time.Duration
	clock    clock.Clock
	logger   *zap.Logger
	lastRun  map[string]time.Time
}

// New creates a Scheduler polling at the given interval.
// A nil clk defaults to the system clock.
func New(jobs []Job, interval time.Duration, clk clock.Clock, logger *zap.Logger) *Scheduler {
	if clk == nil {
		clk = clock.New()
	}
	return &Scheduler{
		jobs:     jobs,
		interval: interval,
		clock:    clk,
		logger:   logger,
		lastRun:  make(map[string]time.Time),
	}
}

// Start runs the polling loop until ctx is cancelled. Job failures and
// panics are logged and never stop the loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Scheduler started",
		zap.Int("jobs", len(s.jobs)),
		zap.Duration("poll_interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.Poll(ctx, s.clock.Now())
		}
	}
}

// Poll runs every job that is due at the given instant. It is exported so a
// manual trigger (or a test) can drive the scheduler without the loop.
func (s *Scheduler) Poll(ctx context.Context, now time.Time) {
	for i := range s.jobs {
		job := s.jobs[i]
		if !s.due(job, now) {
			continue
		}
		s.lastRun[job.Name] = now
		s.runOne(ctx, job)
	}
}

// due reports whether the job's trigger time has passed today and the job
// has not fired today yet.
func (s *Scheduler) due(job Job, now time.Time) bool {
	trigger := time.Date(now.Year(), now.Month(), now.Day(), job.Hour, job.Minute, 0, 0, now.Location())
	if now.Before(trigger) {
		return false
	}
	last, ok := s.lastRun[job.Name]
	if !ok {
		return true
	}
	y1, m1, d1 := last.Date()
	y2, m2, d2 := now.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

func (s *Scheduler) runOne(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Job panicked", zap.String("job", job.Name), zap.Any("panic", r))
		}
	}()

	s.logger.Info("Job triggered", zap.String("job", job.Name))
	if err := job.Run(ctx); err != nil {
		s.logger.Error("Job failed", zap.String("job", job.Name), zap.Error(err))
		return
	}
	s.logger.Info("Job finished", zap.String("job", job.Name))
}
