package framehost

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// WindowSize holds the logical window size reported by the windowing system
// and the physical drawable size, which is larger under display scaling.
type WindowSize struct {
	Width         int
	Height        int
	HighDPIWidth  int
	HighDPIHeight int
}

// NewWindowSize creates a WindowSize, raising the drawable dimensions to at
// least the logical ones.
func NewWindowSize(width, height, drawableWidth, drawableHeight int) WindowSize {
	return WindowSize{
		Width:         width,
		Height:        height,
		HighDPIWidth:  max(drawableWidth, width),
		HighDPIHeight: max(drawableHeight, height),
	}
}

// Scale returns the horizontal ratio of physical to logical pixels.
func (s WindowSize) Scale() float64 {
	if s.Width <= 0 {
		return 1
	}
	return float64(s.HighDPIWidth) / float64(s.Width)
}

// SwapInterval selects how buffer swaps synchronize with the display.
type SwapInterval int

const (
	// SwapImmediate presents as soon as the frame is ready.
	SwapImmediate SwapInterval = 0
	// SwapVSync waits for the vertical retrace.
	SwapVSync SwapInterval = 1
	// SwapAdaptive waits for the retrace unless the frame is late (late swap tearing).
	SwapAdaptive SwapInterval = -1
)

func (s SwapInterval) String() string {
	switch s {
	case SwapImmediate:
		return "immediate"
	case SwapVSync:
		return "vsync"
	case SwapAdaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("SwapInterval(%d)", int(s))
	}
}

// ParseSwapInterval parses "immediate", "vsync" or "adaptive".
func ParseSwapInterval(s string) (SwapInterval, error) {
	switch s {
	case "immediate":
		return SwapImmediate, nil
	case "vsync":
		return SwapVSync, nil
	case "adaptive":
		return SwapAdaptive, nil
	}
	return 0, fmt.Errorf("unknown swap interval %q", s)
}

// ContextProfile is the graphics context profile requested from the platform.
type ContextProfile uint8

const (
	ProfileCore ContextProfile = iota
	ProfileCompatibility
	ProfileES
)

func (p ContextProfile) String() string {
	switch p {
	case ProfileCompatibility:
		return "compatibility"
	case ProfileES:
		return "es"
	default:
		return "core"
	}
}

// ParseContextProfile parses "core", "compatibility" or "es".
func ParseContextProfile(s string) (ContextProfile, error) {
	switch s {
	case "core":
		return ProfileCore, nil
	case "compatibility":
		return ProfileCompatibility, nil
	case "es":
		return ProfileES, nil
	}
	return 0, fmt.Errorf("unknown context profile %q", s)
}

// ContextConfig describes the graphics context to negotiate.
type ContextConfig struct {
	Profile      ContextProfile
	Major        int
	Minor        int
	DoubleBuffer bool
	Accelerated  bool
	Resizable    bool
	HighDPI      bool
}

// DefaultContextConfig returns an accelerated, double-buffered 4.1 core context.
func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		Profile:      ProfileCore,
		Major:        4,
		Minor:        1,
		DoubleBuffer: true,
		Accelerated:  true,
		Resizable:    true,
		HighDPI:      true,
	}
}

// SurfaceConfig is everything a Platform needs to create a surface.
type SurfaceConfig struct {
	Title   string
	Width   int
	Height  int
	Context ContextConfig
}

// Surface is an on-screen, double-buffered drawable bound to a graphics context.
// All methods must be called from the loop thread.
type Surface interface {
	// Size returns the logical window size.
	Size() (width, height int)
	// DrawableSize returns the physical framebuffer size.
	DrawableSize() (width, height int)
	SetSwapInterval(mode SwapInterval) error
	// PollEvent returns the next pending event, or false if the queue is empty.
	PollEvent() (Event, bool)
	Graphics() Graphics
	Present()
	Close() error
}

// Platform creates surfaces on a windowing system.
type Platform interface {
	CreateSurface(cfg SurfaceConfig) (Surface, error)
}

// ErrNoSurface is returned when an operation needs a surface that does not exist.
var ErrNoSurface = errors.New("no surface")

// WindowManager creates surfaces and keeps WindowSize in sync with them.
type WindowManager struct {
	platform Platform
	context  ContextConfig
	log      zerolog.Logger
}

// NewWindowManager creates a window manager that negotiates ctx on platform.
func NewWindowManager(platform Platform, ctx ContextConfig, log zerolog.Logger) *WindowManager {
	return &WindowManager{platform: platform, context: ctx, log: log}
}

// Create opens a surface with the requested logical size.
// Any failure is returned as a PlatformError.
func (m *WindowManager) Create(title string, width, height int) (Surface, WindowSize, error) {
	if width <= 0 || height <= 0 {
		return nil, WindowSize{}, platformError("create surface", fmt.Errorf("invalid window size %dx%d", width, height))
	}

	surface, err := m.platform.CreateSurface(SurfaceConfig{
		Title:   title,
		Width:   width,
		Height:  height,
		Context: m.context,
	})
	if err != nil {
		return nil, WindowSize{}, platformError("create surface", err)
	}
	if surface == nil {
		return nil, WindowSize{}, platformError("create surface", ErrNoSurface)
	}

	w, h := surface.Size()
	dw, dh := surface.DrawableSize()
	size := NewWindowSize(w, h, dw, dh)

	m.log.Info().
		Str("title", title).
		Str("profile", m.context.Profile.String()).
		Int("gl_major", m.context.Major).
		Int("gl_minor", m.context.Minor).
		Int("width", size.Width).
		Int("height", size.Height).
		Int("drawable_width", size.HighDPIWidth).
		Int("drawable_height", size.HighDPIHeight).
		Float64("scale", size.Scale()).
		Msg("surface created")

	return surface, size, nil
}

// Resize recomputes the window size after the logical size changed.
// The physical size is read back from the surface.
func (m *WindowManager) Resize(s Surface, width, height int) WindowSize {
	dw, dh := s.DrawableSize()
	size := NewWindowSize(width, height, dw, dh)

	m.log.Debug().
		Int("width", size.Width).
		Int("height", size.Height).
		Int("drawable_width", size.HighDPIWidth).
		Int("drawable_height", size.HighDPIHeight).
		Msg("surface resized")

	return size
}

// SetSwapInterval applies mode to the surface.
func (m *WindowManager) SetSwapInterval(s Surface, mode SwapInterval) error {
	if err := s.SetSwapInterval(mode); err != nil {
		return platformError("set swap interval", err)
	}
	m.log.Debug().Stringer("swap", mode).Msg("swap interval set")
	return nil
}
