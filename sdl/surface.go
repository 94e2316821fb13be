//go:build darwin || linux || windows

package sdl

import (
	"github.com/agiangrant/framehost"
	"github.com/agiangrant/framehost/internal/ffi"
	"github.com/rs/zerolog"
)

// Surface is an SDL2 window with a current GL context.
type Surface struct {
	window  ffi.Window
	context ffi.GLContext
	log     zerolog.Logger
	raw     ffi.Event
	closed  bool
}

// Size implements framehost.Surface.
func (s *Surface) Size() (int, int) {
	w, h := ffi.WindowSize(s.window)
	return int(w), int(h)
}

// DrawableSize implements framehost.Surface.
func (s *Surface) DrawableSize() (int, int) {
	w, h := ffi.GLDrawableSize(s.window)
	return int(w), int(h)
}

// SetSwapInterval implements framehost.Surface. Drivers without late swap
// tearing reject adaptive sync; vsync is used instead.
func (s *Surface) SetSwapInterval(mode framehost.SwapInterval) error {
	err := ffi.GLSetSwapInterval(int32(mode))
	if err == nil || mode != framehost.SwapAdaptive {
		return err
	}
	s.log.Warn().Err(err).Msg("sdl: adaptive sync unsupported, falling back to vsync")
	return ffi.GLSetSwapInterval(int32(framehost.SwapVSync))
}

// PollEvent implements framehost.Surface. SDL events with no framehost
// counterpart are consumed and skipped.
func (s *Surface) PollEvent() (framehost.Event, bool) {
	for ffi.PollEvent(&s.raw) {
		if ev, ok := translate(&s.raw); ok {
			return ev, true
		}
	}
	return framehost.Event{}, false
}

// Graphics implements framehost.Surface.
func (s *Surface) Graphics() framehost.Graphics {
	return glGraphics{}
}

// Present implements framehost.Surface.
func (s *Surface) Present() {
	ffi.GLSwapWindow(s.window)
}

// Close implements framehost.Surface. It releases the context and window and
// shuts SDL down.
func (s *Surface) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	ffi.GLDeleteContext(s.context)
	ffi.DestroyWindow(s.window)
	ffi.Quit()
	s.log.Debug().Msg("sdl: surface closed")
	return nil
}

// glGraphics issues framehost.Graphics calls on the current GL context.
type glGraphics struct{}

func (glGraphics) Viewport(x, y, width, height int32) { ffi.GLViewport(x, y, width, height) }
func (glGraphics) ClearColor(r, g, b, a float32)      { ffi.GLClearColor(r, g, b, a) }
func (glGraphics) Clear(mask framehost.ClearMask)     { ffi.GLClear(uint32(mask)) }
func (glGraphics) Enable(c framehost.Capability)      { ffi.GLEnable(uint32(c)) }
