package framehost

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/agiangrant/framehost/ui"
	"github.com/pelletier/go-toml/v2"
)

// ConfigKey is the resource key of the application configuration.
const ConfigKey = "Config.toml"

// Duration wraps time.Duration so it can be written as "12ms" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// AppConfig is the contents of Config.toml.
type AppConfig struct {
	Window   WindowConfig   `toml:"window"`
	Graphics GraphicsConfig `toml:"graphics"`
	Loop     LoopConfig     `toml:"loop"`
	Debug    DebugConfig    `toml:"debug"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	// Request a framebuffer at the display's native resolution
	HighDPI bool `toml:"high_dpi"`
}

type GraphicsConfig struct {
	// Context profile: core, compatibility or es
	Profile string `toml:"profile"`
	Major   int    `toml:"major"`
	Minor   int    `toml:"minor"`
	// Swap interval: immediate, vsync or adaptive
	Swap       string     `toml:"swap"`
	ClearColor [3]float32 `toml:"clear_color"`
}

type LoopConfig struct {
	// Minimum wall-clock duration of one frame
	FrameBudget Duration `toml:"frame_budget"`
	// Budget wait strategy: yield or sleep
	Pacing string `toml:"pacing"`
	// Stop after this many presented frames (0 = run until quit)
	MaxFrames uint64 `toml:"max_frames"`
}

type DebugConfig struct {
	// Dump the UI mutator state to stdout on exit
	DumpMutator    bool   `toml:"dump_mutator"`
	AllocProfiling bool   `toml:"alloc_profiling"`
	LogLevel       string `toml:"log_level"`
}

// DefaultAppConfig returns the configuration used for keys missing from Config.toml.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Window: WindowConfig{
			Title:     "Game",
			Width:     960,
			Height:    600,
			Resizable: true,
			HighDPI:   true,
		},
		Graphics: GraphicsConfig{
			Profile:    "core",
			Major:      4,
			Minor:      1,
			Swap:       "immediate",
			ClearColor: [3]float32{0.3, 0.3, 0.5},
		},
		Loop: LoopConfig{
			FrameBudget: Duration{12 * time.Millisecond},
			Pacing:      "yield",
		},
		Debug: DebugConfig{
			DumpMutator: true,
			LogLevel:    "info",
		},
	}
}

// ParseAppConfig decodes data over the defaults and validates the result.
// Unknown keys are rejected. Errors are ConfigErrors.
func ParseAppConfig(data []byte) (AppConfig, error) {
	cfg := DefaultAppConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return AppConfig{}, configError("parse "+ConfigKey, fmt.Errorf("line %d column %d: %w", row, col, err))
		}
		return AppConfig{}, configError("parse "+ConfigKey, err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, configError("validate "+ConfigKey, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c AppConfig) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks ranges and enumerations.
func (c AppConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Graphics.Major <= 0 || c.Graphics.Minor < 0 {
		errs = append(errs, fmt.Errorf("invalid graphics version %d.%d", c.Graphics.Major, c.Graphics.Minor))
	}
	if _, err := ParseContextProfile(c.Graphics.Profile); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseSwapInterval(c.Graphics.Swap); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParsePacingStrategy(c.Loop.Pacing); err != nil {
		errs = append(errs, err)
	}
	for i, v := range c.Graphics.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %g out of range [0, 1]", i, v))
		}
	}
	return errors.Join(errs...)
}

// EngineConfig converts the file configuration into an engine configuration.
// The configuration must be valid.
func (c AppConfig) EngineConfig() EngineConfig {
	profile, _ := ParseContextProfile(c.Graphics.Profile)
	swap, _ := ParseSwapInterval(c.Graphics.Swap)
	pacing, _ := ParsePacingStrategy(c.Loop.Pacing)

	return EngineConfig{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		Context: ContextConfig{
			Profile:      profile,
			Major:        c.Graphics.Major,
			Minor:        c.Graphics.Minor,
			DoubleBuffer: true,
			Accelerated:  true,
			Resizable:    c.Window.Resizable,
			HighDPI:      c.Window.HighDPI,
		},
		Swap:        swap,
		ClearColor:  ui.NewColor(c.Graphics.ClearColor[0], c.Graphics.ClearColor[1], c.Graphics.ClearColor[2]),
		FrameBudget: c.Loop.FrameBudget.Duration,
		Pacing:      pacing,
		MaxFrames:   c.Loop.MaxFrames,
		DumpMutator: c.Debug.DumpMutator,
	}
}
