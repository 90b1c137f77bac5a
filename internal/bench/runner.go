// Package bench contains the timing harness: a runner that measures
// named units of work and a driver that sequences the benchmark phases.
package bench

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Timing is one completed phase: its human-readable name and how long
// it took. Entries keep execution order; duplicate names are allowed so
// repeated runs can measure the same phase more than once.
type Timing struct {
	Name     string
	Duration time.Duration
}

func (t Timing) Seconds() float64 {
	return t.Duration.Seconds()
}

// Runner measures named units of work and keeps the ordered timing
// log. It is not safe for concurrent use; the harness is a single
// sequential client.
type Runner struct {
	timings []Timing
	silent  bool
}

func NewRunner() *Runner {
	return &Runner{}
}

// NewSilentRunner measures without printing, for tests.
func NewSilentRunner() *Runner {
	return &Runner{silent: true}
}

// Measure runs fn exactly once and records (name, elapsed) on success.
// When fn fails nothing is recorded and the error propagates: a failed
// phase must not show up in the log with a partial duration.
func (r *Runner) Measure(name string, fn func() error) (time.Duration, error) {
	start := time.Now()
	if err := fn(); err != nil {
		return 0, fmt.Errorf("%s failed: %w", name, err)
	}
	duration := time.Since(start)

	r.timings = append(r.timings, Timing{Name: name, Duration: duration})
	if !r.silent {
		color.Green("⏱  %s took %.2f seconds", name, duration.Seconds())
	}
	return duration, nil
}

// Timings returns a copy of the ordered log.
func (r *Runner) Timings() []Timing {
	out := make([]Timing, len(r.timings))
	copy(out, r.timings)
	return out
}
