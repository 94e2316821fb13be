//go:build darwin || linux || windows

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// GL function pointers, resolved through SDL_GL_GetProcAddress once a
// context is current.
var (
	fnGLViewport   func(x, y, width, height int32)
	fnGLClearColor func(r, g, b, a float32)
	fnGLClear      func(mask uint32)
	fnGLEnable     func(capability uint32)
)

// LoadGL resolves the GL entry points. A context must be current.
func LoadGL() error {
	procs := []struct {
		fn   any
		name string
	}{
		{&fnGLViewport, "glViewport"},
		{&fnGLClearColor, "glClearColor"},
		{&fnGLClear, "glClear"},
		{&fnGLEnable, "glEnable"},
	}
	for _, p := range procs {
		addr := fnGLGetProcAddress(p.name)
		if addr == 0 {
			return fmt.Errorf("failed to resolve %s: %w", p.name, sdlError("SDL_GL_GetProcAddress"))
		}
		purego.RegisterFunc(p.fn, addr)
	}
	logger.Debug().Int("count", len(procs)).Msg("ffi: GL functions resolved")
	return nil
}

// GLViewport calls glViewport.
func GLViewport(x, y, width, height int32) { fnGLViewport(x, y, width, height) }

// GLClearColor calls glClearColor.
func GLClearColor(r, g, b, a float32) { fnGLClearColor(r, g, b, a) }

// GLClear calls glClear.
func GLClear(mask uint32) { fnGLClear(mask) }

// GLEnable calls glEnable.
func GLEnable(capability uint32) { fnGLEnable(capability) }
