// Package headless provides a framehost.Platform without a windowing system.
//
// Surfaces report a logical size and a drawable size scaled by a fixed DPI
// factor, replay scripted event batches and record every graphics call, which
// makes the package suitable for tests and for smoke runs on machines without
// a display.
package headless

import (
	"errors"
	"fmt"
	"math"

	"github.com/agiangrant/framehost"
)

// ErrClosed is returned when a closed surface is closed again.
var ErrClosed = errors.New("headless: surface already closed")

// Option configures a Platform.
type Option func(*Platform)

// WithScale sets the ratio of physical to logical pixels (default 1).
func WithScale(scale float64) Option {
	return func(p *Platform) { p.scale = scale }
}

// WithEvents scripts the event queue. Batch i is delivered during the i-th
// drain of the queue, so each batch lands in its own loop iteration.
func WithEvents(batches ...[]framehost.Event) Option {
	return func(p *Platform) { p.batches = append(p.batches, batches...) }
}

// WithQuitAfter queues a quit event once n frames have been presented.
func WithQuitAfter(n int) Option {
	return func(p *Platform) { p.quitAfter = n }
}

// WithMaxVersion sets the highest context version the platform can create
// (default 4.6). Requests above it fail like a missing driver profile.
func WithMaxVersion(major, minor int) Option {
	return func(p *Platform) { p.maxMajor, p.maxMinor = major, minor }
}

// WithCreateError makes CreateSurface fail with err.
func WithCreateError(err error) Option {
	return func(p *Platform) { p.createErr = err }
}

// Platform creates headless surfaces.
type Platform struct {
	scale     float64
	batches   [][]framehost.Event
	quitAfter int
	maxMajor  int
	maxMinor  int
	createErr error

	surfaces []*Surface
}

// New creates a platform.
func New(opts ...Option) *Platform {
	p := &Platform{scale: 1, maxMajor: 4, maxMinor: 6}
	for _, opt := range opts {
		opt(p)
	}
	if p.scale < 1 {
		p.scale = 1
	}
	return p
}

// CreateSurface implements framehost.Platform.
func (p *Platform) CreateSurface(cfg framehost.SurfaceConfig) (framehost.Surface, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	ctx := cfg.Context
	if ctx.Major > p.maxMajor || (ctx.Major == p.maxMajor && ctx.Minor > p.maxMinor) {
		return nil, fmt.Errorf("headless: no compatible graphics profile for %s %d.%d (max %d.%d)",
			ctx.Profile, ctx.Major, ctx.Minor, p.maxMajor, p.maxMinor)
	}

	scale := p.scale
	if !ctx.HighDPI {
		scale = 1
	}
	s := &Surface{
		title:     cfg.Title,
		width:     cfg.Width,
		height:    cfg.Height,
		scale:     scale,
		batches:   p.batches,
		quitAfter: p.quitAfter,
		graphics:  &Recorder{},
	}
	s.nextBatch()
	p.surfaces = append(p.surfaces, s)
	return s, nil
}

// Surface returns the most recently created surface, or nil.
func (p *Platform) Surface() *Surface {
	if len(p.surfaces) == 0 {
		return nil
	}
	return p.surfaces[len(p.surfaces)-1]
}

// Surface is a headless framehost.Surface.
type Surface struct {
	title         string
	width, height int
	scale         float64

	batches   [][]framehost.Event
	pending   []framehost.Event
	quitAfter int

	swap     framehost.SwapInterval
	graphics *Recorder
	presents int
	polls    int
	closed   bool
}

// Title returns the window title.
func (s *Surface) Title() string { return s.title }

// Size implements framehost.Surface.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// DrawableSize implements framehost.Surface.
func (s *Surface) DrawableSize() (int, int) {
	return scaled(s.width, s.scale), scaled(s.height, s.scale)
}

func scaled(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

// SetSwapInterval implements framehost.Surface.
func (s *Surface) SetSwapInterval(mode framehost.SwapInterval) error {
	switch mode {
	case framehost.SwapImmediate, framehost.SwapVSync, framehost.SwapAdaptive:
		s.swap = mode
		return nil
	}
	return fmt.Errorf("headless: unsupported swap interval %d", int(mode))
}

// SwapInterval returns the last swap interval set.
func (s *Surface) SwapInterval() framehost.SwapInterval { return s.swap }

// Push appends events to the queue currently being drained.
func (s *Surface) Push(events ...framehost.Event) {
	s.pending = append(s.pending, events...)
}

// PollEvent implements framehost.Surface. A resize event updates the logical
// size as it is dequeued, the way a window manager resizes the window before
// the application hears about it. Reporting an empty queue ends the current
// drain and stages the next scripted batch.
func (s *Surface) PollEvent() (framehost.Event, bool) {
	s.polls++
	if len(s.pending) == 0 {
		s.nextBatch()
		return framehost.Event{}, false
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	if ev.Kind == framehost.EventWindowResized {
		s.width, s.height = ev.Width, ev.Height
	}
	return ev, true
}

func (s *Surface) nextBatch() {
	if len(s.batches) == 0 {
		return
	}
	s.pending = append(s.pending, s.batches[0]...)
	s.batches = s.batches[1:]
}

// Polls returns how many times PollEvent was called.
func (s *Surface) Polls() int { return s.polls }

// Pending returns the number of queued events not yet polled.
func (s *Surface) Pending() int { return len(s.pending) }

// Graphics implements framehost.Surface.
func (s *Surface) Graphics() framehost.Graphics { return s.graphics }

// Recorder returns the recorded graphics calls.
func (s *Surface) Recorder() *Recorder { return s.graphics }

// Present implements framehost.Surface.
func (s *Surface) Present() {
	s.presents++
	if s.quitAfter > 0 && s.presents == s.quitAfter {
		s.Push(framehost.Event{Kind: framehost.EventQuit})
	}
}

// Presents returns the number of presented frames.
func (s *Surface) Presents() int { return s.presents }

// Close implements framehost.Surface.
func (s *Surface) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Surface) Closed() bool { return s.closed }
