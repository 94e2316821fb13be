// Package sdl implements framehost.Platform on SDL2 with an OpenGL context.
//
// SDL2 is loaded at run time (see internal/ffi), so building needs no C
// toolchain. All calls must come from the thread that created the surface,
// which on macOS has to be the main thread.
package sdl

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrClosed is returned when a closed surface is closed again.
var ErrClosed = errors.New("sdl: surface already closed")

// Option configures a Platform.
type Option func(*Platform)

// WithLogger sets the logger for backend diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Platform) { p.log = log }
}

// Platform creates SDL2 windows with a GL context.
type Platform struct {
	os  OS
	log zerolog.Logger
}

// New creates a platform for the current OS.
func New(opts ...Option) *Platform {
	p := &Platform{os: CurrentOS(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OS returns the operating system the platform was created for.
func (p *Platform) OS() OS {
	return p.os
}
