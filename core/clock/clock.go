package clock

import "time"

// Clock abstracts wall-clock time so components that pace, schedule or
// expire things can be tested without real delays.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep blocks the caller for the given duration.
	Sleep(d time.Duration)
}

// New returns a Clock backed by the system clock.
func New() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }
