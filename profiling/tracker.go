// Package profiling implements framehost.AllocTracker on top of the Go
// runtime's allocation counters and the process resident set size.
package profiling

import (
	"os"
	"runtime"

	"github.com/agiangrant/framehost"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/process"
)

// DefaultRSSEvery is how many sampled frames pass between RSS reads.
const DefaultRSSEvery = 30

// Tracker samples allocation counters after each frame while enabled.
// It is not safe for concurrent use.
type Tracker struct {
	enabled  bool
	rssEvery uint64
	proc     *process.Process
	log      zerolog.Logger

	last    runtime.MemStats
	summary framehost.AllocSummary
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithRSSEvery sets how often the resident set size is sampled; 0 disables it.
func WithRSSEvery(frames uint64) Option {
	return func(t *Tracker) { t.rssEvery = frames }
}

// WithLogger sets the logger for per-frame debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// New creates a tracker, initially enabled or not.
func New(enabled bool, opts ...Option) *Tracker {
	t := &Tracker{rssEvery: DefaultRSSEvery, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}
	if t.rssEvery > 0 {
		if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
			t.proc = p
		} else {
			t.log.Warn().Err(err).Msg("process stats unavailable, RSS will not be sampled")
		}
	}
	if enabled {
		t.Toggle()
	}
	return t
}

// Enabled implements framehost.AllocTracker.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// Toggle implements framehost.AllocTracker. Enabling takes a fresh baseline
// so allocations made while disabled are not attributed to the next frame.
func (t *Tracker) Toggle() bool {
	t.enabled = !t.enabled
	if t.enabled {
		runtime.ReadMemStats(&t.last)
	}
	return t.enabled
}

// FrameDone implements framehost.AllocTracker.
func (t *Tracker) FrameDone() {
	if !t.enabled {
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	mallocs := ms.Mallocs - t.last.Mallocs
	frees := ms.Frees - t.last.Frees
	bytes := ms.TotalAlloc - t.last.TotalAlloc
	t.last = ms

	s := &t.summary
	s.Frames++
	s.Mallocs += mallocs
	s.Frees += frees
	s.Bytes += bytes
	s.PeakHeap = max(s.PeakHeap, ms.HeapAlloc)

	if t.proc != nil && t.rssEvery > 0 && (s.Frames-1)%t.rssEvery == 0 {
		if mi, err := t.proc.MemoryInfo(); err == nil {
			s.PeakRSS = max(s.PeakRSS, mi.RSS)
		}
	}

	t.log.Trace().
		Uint64("frame", s.Frames).
		Uint64("mallocs", mallocs).
		Uint64("frees", frees).
		Uint64("bytes", bytes).
		Msg("frame allocations")
}

// Summary implements framehost.AllocTracker.
func (t *Tracker) Summary() framehost.AllocSummary {
	return t.summary
}
