package framehost

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/agiangrant/framehost/ui"
	"github.com/agiangrant/framehost/ui/mutator"
	"github.com/rs/zerolog"
)

// State is the lifecycle state of an Engine.
type State uint8

const (
	StateInitializing State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "initializing"
	}
}

// EngineConfig contains configuration for the engine
type EngineConfig struct {
	Title   string
	Width   int
	Height  int
	Context ContextConfig
	Swap    SwapInterval

	ClearColor ui.Color

	// FrameBudget is the minimum duration of one iteration before presenting.
	FrameBudget time.Duration
	Pacing      PacingStrategy

	// MaxFrames stops the loop after this many presented frames (0 = no limit).
	MaxFrames uint64

	// DumpMutator writes the mutator state to the reporter on shutdown.
	DumpMutator bool
}

// DefaultEngineConfig returns the default engine configuration
func DefaultEngineConfig() EngineConfig {
	return DefaultAppConfig().EngineConfig()
}

// Frame describes one presented frame.
type Frame struct {
	// Number is the 1-based count of presented frames.
	Number uint64
	// DeltaTime is the duration in seconds of the iteration that presented
	// this frame.
	DeltaTime float64
	// Time is seconds since the loop started.
	Time float64
}

// LoopStats contains frame timing statistics.
type LoopStats struct {
	Frames   uint64
	MinDelta float64
	MaxDelta float64
	total    float64
}

// MeanDelta returns the average frame delta in seconds.
func (s LoopStats) MeanDelta() float64 {
	if s.Frames == 0 {
		return 0
	}
	return s.total / float64(s.Frames)
}

func (s *LoopStats) record(delta float64) {
	if s.Frames == 0 {
		s.MinDelta, s.MaxDelta = math.Inf(1), 0
	}
	s.Frames++
	s.total += delta
	s.MinDelta = min(s.MinDelta, delta)
	s.MaxDelta = max(s.MaxDelta, delta)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithReporter sets where the shutdown read-out is written.
func WithReporter(w io.Writer) Option {
	return func(e *Engine) { e.reporter = w }
}

// WithAllocTracker enables allocation profiling hooks.
func WithAllocTracker(t AllocTracker) Option {
	return func(e *Engine) { e.tracker = t }
}

// WithActions replaces the default action map.
func WithActions(m *ActionMap) Option {
	return func(e *Engine) { e.actions = m }
}

// WithFrameHook registers fn to be called after every presented frame.
func WithFrameHook(fn func(Frame)) Option {
	return func(e *Engine) { e.onFrame = fn }
}

// WithPassthrough registers fn to receive events the router does not handle.
func WithPassthrough(fn func(Event)) Option {
	return func(e *Engine) { e.passthrough = fn }
}

// Engine runs the presentation loop: it owns the surface, routes events,
// clears and presents frames at a paced cadence and reports the UI mutator
// on shutdown. An Engine runs once and must stay on a single thread.
type Engine struct {
	config   EngineConfig
	platform Platform
	mutator  *mutator.Mutator

	log         zerolog.Logger
	reporter    io.Writer
	tracker     AllocTracker
	actions     *ActionMap
	onFrame     func(Frame)
	passthrough func(Event)

	state   State
	windows *WindowManager
	router  *EventRouter
	pacer   *FramePacer
	colors  *ColorBuffer

	surface      Surface
	surfaceState SurfaceState
	stats        LoopStats
}

// NewEngine creates an engine. Nothing touches the platform until Run.
func NewEngine(config EngineConfig, platform Platform, m *mutator.Mutator, opts ...Option) *Engine {
	e := &Engine{
		config:   config,
		platform: platform,
		mutator:  m,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.actions == nil {
		e.actions = DefaultActionMap()
	}
	return e
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Stats returns frame statistics.
func (e *Engine) Stats() LoopStats {
	return e.stats
}

// SurfaceState returns the current window size and viewport.
func (e *Engine) SurfaceState() SurfaceState {
	return e.surfaceState
}

// Run initializes the surface, runs the loop until a quit event (or
// MaxFrames) and then reports. Initialization failures are returned
// immediately as PlatformErrors; the mutator is not reported in that case.
func (e *Engine) Run() error {
	if e.state != StateInitializing {
		return &Error{Kind: RuntimeError, Op: "run", Err: errors.New("engine already ran")}
	}

	if err := e.init(); err != nil {
		e.state = StateTerminated
		return err
	}

	e.state = StateRunning
	e.loop()

	e.state = StateTerminated
	e.shutdown()
	return nil
}

func (e *Engine) init() error {
	if e.platform == nil {
		return platformError("init", errors.New("no platform"))
	}

	e.windows = NewWindowManager(e.platform, e.config.Context, e.log)
	surface, size, err := e.windows.Create(e.config.Title, e.config.Width, e.config.Height)
	if err != nil {
		return err
	}
	e.surface = surface

	// A rejected swap interval leaves the driver default in place.
	if err := e.windows.SetSwapInterval(surface, e.config.Swap); err != nil {
		e.log.Warn().Err(err).Stringer("swap", e.config.Swap).Msg("swap interval not applied")
	}

	g := surface.Graphics()
	e.surfaceState.Sync(g, size)
	e.colors = NewColorBuffer()
	e.colors.SetClearColor(g, e.config.ClearColor)

	e.router = NewEventRouter(e.windows, e.actions, e.log)
	e.router.SetPassthrough(e.passthrough)
	if e.tracker != nil {
		e.actions.On(ActionToggleProfiler, func() {
			enabled := e.tracker.Toggle()
			e.log.Info().Bool("enabled", enabled).Msg("allocation profiler toggled")
		})
	}

	e.pacer = NewFramePacer(e.config.Pacing)

	e.log.Debug().
		Dur("frame_budget", e.config.FrameBudget).
		Stringer("pacing", e.pacer.Strategy()).
		Uint64("max_frames", e.config.MaxFrames).
		Msg("engine initialized")
	return nil
}

func (e *Engine) loop() {
	e.pacer.Reset()
	start := time.Now()

	for {
		if e.router.Drain(e.surface, &e.surfaceState) == Quit {
			return
		}

		g := e.surface.Graphics()
		g.Enable(CapCullFace)
		g.Clear(ClearColorBuffer | ClearDepthBuffer)
		g.Enable(CapDepthTest)
		e.colors.Clear(g)

		e.pacer.EnforceBudget(e.config.FrameBudget)
		e.surface.Present()

		// Ticking here marks the top of the next iteration, so delta spans
		// the whole iteration that just presented, budget wait included.
		delta := e.pacer.Tick()
		e.stats.record(delta)
		if e.onFrame != nil {
			e.onFrame(Frame{
				Number:    e.stats.Frames,
				DeltaTime: delta,
				Time:      time.Since(start).Seconds(),
			})
		}
		if e.tracker != nil && e.tracker.Enabled() {
			e.tracker.FrameDone()
		}

		if e.config.MaxFrames > 0 && e.stats.Frames >= e.config.MaxFrames {
			e.log.Debug().Uint64("frames", e.stats.Frames).Msg("frame limit reached")
			return
		}
	}
}

func (e *Engine) shutdown() {
	if e.config.DumpMutator && e.mutator != nil && e.reporter != nil {
		fmt.Fprintln(e.reporter, "mutator:")
		e.mutator.Dump(e.reporter)
	}

	ev := e.log.Info().Uint64("frames", e.stats.Frames)
	if e.stats.Frames > 0 {
		ev = ev.Float64("mean_delta", e.stats.MeanDelta()).
			Float64("min_delta", e.stats.MinDelta).
			Float64("max_delta", e.stats.MaxDelta)
	}
	ev.Msg("loop terminated")

	if e.tracker != nil {
		s := e.tracker.Summary()
		e.log.Info().
			Uint64("frames", s.Frames).
			Uint64("mallocs", s.Mallocs).
			Uint64("frees", s.Frees).
			Uint64("bytes", s.Bytes).
			Uint64("peak_heap", s.PeakHeap).
			Uint64("peak_rss", s.PeakRSS).
			Msg("allocation summary")
	}

	if err := e.surface.Close(); err != nil {
		e.log.Warn().Err(err).Msg("closing surface")
	}
}
