//go:build darwin || linux || windows

package sdl

import (
	"fmt"

	"github.com/agiangrant/framehost"
	"github.com/agiangrant/framehost/internal/ffi"
)

// CreateSurface implements framehost.Platform. It initializes SDL's video
// subsystem on first use, opens the window, creates and loads the GL context.
func (p *Platform) CreateSurface(cfg framehost.SurfaceConfig) (framehost.Surface, error) {
	if major, minor := MaxCoreVersion(p.os); major > 0 && cfg.Context.Profile == framehost.ProfileCore {
		if cfg.Context.Major > major || (cfg.Context.Major == major && cfg.Context.Minor > minor) {
			return nil, fmt.Errorf("no compatible graphics profile: %s %d.%d exceeds %d.%d on %s",
				cfg.Context.Profile, cfg.Context.Major, cfg.Context.Minor, major, minor, p.os)
		}
	}

	ffi.SetLogger(p.log)
	if err := ffi.Load(); err != nil {
		return nil, err
	}
	if err := ffi.Init(ffi.InitVideo); err != nil {
		return nil, err
	}

	if err := p.setAttributes(cfg.Context); err != nil {
		ffi.Quit()
		return nil, err
	}

	flags := ffi.WindowOpenGL | ffi.WindowShown
	if cfg.Context.Resizable {
		flags |= ffi.WindowResizable
	}
	if cfg.Context.HighDPI {
		flags |= ffi.WindowAllowHighDPI
	}
	win, err := ffi.CreateWindow(cfg.Title, ffi.WindowPosUndefined, ffi.WindowPosUndefined,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		ffi.Quit()
		return nil, err
	}

	ctx, err := ffi.GLCreateContext(win)
	if err != nil {
		ffi.DestroyWindow(win)
		ffi.Quit()
		return nil, fmt.Errorf("no compatible graphics profile for %s %d.%d: %w",
			cfg.Context.Profile, cfg.Context.Major, cfg.Context.Minor, err)
	}
	if err := ffi.LoadGL(); err != nil {
		ffi.GLDeleteContext(ctx)
		ffi.DestroyWindow(win)
		ffi.Quit()
		return nil, err
	}

	p.log.Debug().Str("library", ffi.Loaded()).Stringer("profile", cfg.Context.Profile).Msg("sdl: GL context ready")
	return &Surface{window: win, context: ctx, log: p.log}, nil
}

type glAttr struct {
	attr  ffi.GLAttr
	value int32
}

func (p *Platform) setAttributes(ctx framehost.ContextConfig) error {
	var mask int32
	switch ctx.Profile {
	case framehost.ProfileCompatibility:
		mask = ffi.GLProfileCompatibility
	case framehost.ProfileES:
		mask = ffi.GLProfileES
	default:
		mask = ffi.GLProfileCore
	}

	attrs := []glAttr{
		{ffi.GLContextProfileMask, mask},
		{ffi.GLContextMajor, int32(ctx.Major)},
		{ffi.GLContextMinor, int32(ctx.Minor)},
		{ffi.GLDoubleBuffer, boolInt(ctx.DoubleBuffer)},
		{ffi.GLAcceleratedVisual, boolInt(ctx.Accelerated)},
	}
	if NeedsForwardCompatible(p.os, ctx) {
		attrs = append(attrs, glAttr{ffi.GLContextFlags, ffi.GLContextForwardCompatible})
	}
	for _, a := range attrs {
		if err := ffi.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}
	return nil
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
