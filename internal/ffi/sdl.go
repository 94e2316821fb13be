//go:build darwin || linux || windows

package ffi

import (
	"errors"
	"fmt"
)

// Subsystem flags for Init.
const (
	InitVideo uint32 = 0x00000020
)

// GLAttr is an SDL_GLattr.
type GLAttr int32

const (
	GLDoubleBuffer       GLAttr = 5
	GLAcceleratedVisual  GLAttr = 15
	GLContextMajor       GLAttr = 17
	GLContextMinor       GLAttr = 18
	GLContextFlags       GLAttr = 20
	GLContextProfileMask GLAttr = 21
)

// Values for GLContextProfileMask.
const (
	GLProfileCore          int32 = 0x0001
	GLProfileCompatibility int32 = 0x0002
	GLProfileES            int32 = 0x0004
)

// Values for GLContextFlags.
const (
	GLContextForwardCompatible int32 = 0x0002
)

// Window creation flags.
const (
	WindowOpenGL       uint32 = 0x00000002
	WindowShown        uint32 = 0x00000004
	WindowResizable    uint32 = 0x00000020
	WindowAllowHighDPI uint32 = 0x00002000

	WindowPosUndefined int32 = 0x1FFF0000
)

// Window is an SDL_Window handle.
type Window uintptr

// GLContext is an SDL_GLContext handle.
type GLContext uintptr

// ErrNotLoaded is returned by calls made before Load succeeded.
var ErrNotLoaded = errors.New("ffi: SDL2 not loaded")

// sdlError returns the pending SDL error for op.
func sdlError(op string) error {
	msg := goString(fnGetError())
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Errorf("%s: %s", op, msg)
}

// Init initializes the given SDL subsystems.
func Init(flags uint32) error {
	if fnInit == nil {
		return ErrNotLoaded
	}
	if fnInit(flags) != 0 {
		return sdlError("SDL_Init")
	}
	return nil
}

// Quit shuts down all SDL subsystems.
func Quit() {
	if fnQuit != nil {
		fnQuit()
	}
}

// GLSetAttribute sets a context attribute before window creation.
func GLSetAttribute(attr GLAttr, value int32) error {
	if fnGLSetAttribute(int32(attr), value) != 0 {
		return sdlError(fmt.Sprintf("SDL_GL_SetAttribute(%d, %d)", attr, value))
	}
	return nil
}

// CreateWindow opens a window. Position may be WindowPosUndefined.
func CreateWindow(title string, x, y, width, height int32, flags uint32) (Window, error) {
	w := fnCreateWindow(title, x, y, width, height, flags)
	if w == 0 {
		return 0, sdlError("SDL_CreateWindow")
	}
	return Window(w), nil
}

// DestroyWindow closes w.
func DestroyWindow(w Window) {
	fnDestroyWindow(uintptr(w))
}

// WindowSize returns the logical size of w.
func WindowSize(w Window) (int32, int32) {
	var width, height int32
	fnGetWindowSize(uintptr(w), &width, &height)
	return width, height
}

// GLCreateContext creates a context for w and makes it current.
func GLCreateContext(w Window) (GLContext, error) {
	ctx := fnGLCreateContext(uintptr(w))
	if ctx == 0 {
		return 0, sdlError("SDL_GL_CreateContext")
	}
	return GLContext(ctx), nil
}

// GLDeleteContext destroys ctx.
func GLDeleteContext(ctx GLContext) {
	fnGLDeleteContext(uintptr(ctx))
}

// GLDrawableSize returns the size of w's framebuffer in physical pixels.
func GLDrawableSize(w Window) (int32, int32) {
	var width, height int32
	fnGLGetDrawableSize(uintptr(w), &width, &height)
	return width, height
}

// GLSetSwapInterval sets the swap interval of the current context:
// 0 immediate, 1 vsync, -1 adaptive.
func GLSetSwapInterval(interval int32) error {
	if fnGLSetSwapInterval(interval) != 0 {
		return sdlError(fmt.Sprintf("SDL_GL_SetSwapInterval(%d)", interval))
	}
	return nil
}

// GLSwapWindow presents the back buffer of w.
func GLSwapWindow(w Window) {
	fnGLSwapWindow(uintptr(w))
}

// GLExtensionSupported reports whether the current context exposes extension.
func GLExtensionSupported(extension string) bool {
	return fnGLExtensionSupport(extension) != 0
}

// PollEvent fills ev with the next pending event. Returns false when the
// queue is empty.
func PollEvent(ev *Event) bool {
	return fnPollEvent(ev) != 0
}
