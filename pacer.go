package framehost

import (
	"fmt"
	"runtime"
	"time"
)

// PacingStrategy selects how EnforceBudget waits out the rest of a frame.
type PacingStrategy uint8

const (
	// PacingYield spins, yielding the processor on each check. Lowest jitter,
	// keeps a core busy.
	PacingYield PacingStrategy = iota
	// PacingSleep sleeps for the remaining budget. Cheaper on power, at the
	// mercy of timer resolution.
	PacingSleep
)

func (s PacingStrategy) String() string {
	if s == PacingSleep {
		return "sleep"
	}
	return "yield"
}

// ParsePacingStrategy parses "yield" or "sleep".
func ParsePacingStrategy(s string) (PacingStrategy, error) {
	switch s {
	case "yield":
		return PacingYield, nil
	case "sleep":
		return PacingSleep, nil
	}
	return 0, fmt.Errorf("unknown pacing strategy %q", s)
}

// FramePacer measures frame deltas and enforces a minimum frame duration.
//
// The baseline is moved only by Tick and Reset, so deltas are always measured
// from the top of one iteration to the top of the next no matter where in the
// iteration EnforceBudget runs.
type FramePacer struct {
	strategy PacingStrategy
	last     time.Time
}

// NewFramePacer creates a pacer with its baseline set to now.
func NewFramePacer(strategy PacingStrategy) *FramePacer {
	return &FramePacer{strategy: strategy, last: time.Now()}
}

// Strategy returns the wait strategy.
func (p *FramePacer) Strategy() PacingStrategy {
	return p.strategy
}

// Reset moves the baseline to now.
func (p *FramePacer) Reset() {
	p.last = time.Now()
}

// Tick returns the seconds elapsed since the previous Tick (or Reset) and
// moves the baseline to now.
func (p *FramePacer) Tick() float64 {
	now := time.Now()
	delta := now.Sub(p.last)
	p.last = now
	if delta < 0 {
		delta = 0
	}
	return delta.Seconds()
}

// Elapsed returns the time since the baseline.
func (p *FramePacer) Elapsed() time.Duration {
	return time.Since(p.last)
}

// EnforceBudget blocks until at least d has passed since the baseline.
// It never moves the baseline.
func (p *FramePacer) EnforceBudget(d time.Duration) {
	if d <= 0 {
		return
	}
	switch p.strategy {
	case PacingSleep:
		for {
			remaining := d - p.Elapsed()
			if remaining <= 0 {
				return
			}
			time.Sleep(remaining)
		}
	default:
		for p.Elapsed() < d {
			runtime.Gosched()
		}
	}
}
