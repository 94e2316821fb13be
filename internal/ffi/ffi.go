//go:build darwin || linux || windows

// Package ffi provides Go bindings to SDL2 and the OpenGL entry points the
// host needs, loaded at runtime via purego. No cgo is involved, so binaries
// cross-compile and only need the SDL2 shared library at run time.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/rs/zerolog"
)

// LibraryPathEnv overrides the SDL2 library search.
const LibraryPathEnv = "FRAMEHOST_SDL2_PATH"

// ============================================================================
// Library Loading
// ============================================================================

var (
	libHandle uintptr
	libPath   string
	libOnce   sync.Once
	libErr    error

	logger = zerolog.Nop()
)

// SDL function pointers (populated by Load)
var (
	fnInit          func(flags uint32) int32
	fnQuit          func()
	fnGetError      func() uintptr
	fnCreateWindow  func(title string, x, y, w, h int32, flags uint32) uintptr
	fnDestroyWindow func(window uintptr)
	fnGetWindowSize func(window uintptr, w, h *int32)
	fnPollEvent     func(event *Event) int32

	fnGLSetAttribute     func(attr int32, value int32) int32
	fnGLCreateContext    func(window uintptr) uintptr
	fnGLDeleteContext    func(context uintptr)
	fnGLGetDrawableSize  func(window uintptr, w, h *int32)
	fnGLSetSwapInterval  func(interval int32) int32
	fnGLSwapWindow       func(window uintptr)
	fnGLGetProcAddress   func(name string) uintptr
	fnGLExtensionSupport func(extension string) int32
)

// SetLogger sets the logger used for library loading diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Loaded returns the path SDL2 was loaded from, or "" if Load has not
// succeeded.
func Loaded() string {
	if libErr != nil {
		return ""
	}
	return libPath
}

// Load loads SDL2 and registers its functions. It is safe to call more than
// once; only the first call does any work.
func Load() error {
	libOnce.Do(func() {
		logger.Debug().Str("goos", runtime.GOOS).Str("goarch", runtime.GOARCH).Msg("ffi: loading SDL2")

		var errs []error
		for _, path := range libraryCandidates() {
			handle, err := openLibrary(path)
			if err != nil {
				logger.Debug().Str("path", path).Err(err).Msg("ffi: candidate rejected")
				errs = append(errs, err)
				continue
			}
			libHandle, libPath = handle, path
			break
		}
		if libHandle == 0 {
			libErr = fmt.Errorf("failed to load SDL2: %w", errors.Join(errs...))
			return
		}

		if err := registerSDLFunctions(); err != nil {
			libErr = fmt.Errorf("failed to register SDL2 functions from %s: %w", libPath, err)
			return
		}
		logger.Info().Str("path", libPath).Msg("ffi: SDL2 loaded")
	})

	return libErr
}

// libraryCandidates returns the paths to try, in order. An explicit override
// is the only candidate.
func libraryCandidates() []string {
	if path := os.Getenv(LibraryPathEnv); path != "" {
		return []string{path}
	}

	var names []string
	switch runtime.GOOS {
	case "darwin":
		names = []string{"libSDL2-2.0.0.dylib", "libSDL2.dylib"}
	case "windows":
		names = []string{"SDL2.dll"}
	default:
		names = []string{"libSDL2-2.0.so.0", "libSDL2.so"}
	}

	var dirs []string
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		dirs = append(dirs, execDir, filepath.Join(execDir, "..", "lib"))
		if runtime.GOOS == "darwin" {
			dirs = append(dirs,
				filepath.Join(execDir, "..", "Frameworks"),
				"/opt/homebrew/lib",
				"/usr/local/lib",
			)
		}
	}

	var candidates []string
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				candidates = append(candidates, path)
			}
		}
	}
	// Bare names last: let the system loader search its own paths.
	return append(candidates, names...)
}

func registerSDLFunctions() error {
	required := []struct {
		fn   any
		name string
	}{
		{&fnInit, "SDL_Init"},
		{&fnQuit, "SDL_Quit"},
		{&fnGetError, "SDL_GetError"},
		{&fnCreateWindow, "SDL_CreateWindow"},
		{&fnDestroyWindow, "SDL_DestroyWindow"},
		{&fnGetWindowSize, "SDL_GetWindowSize"},
		{&fnPollEvent, "SDL_PollEvent"},
		{&fnGLSetAttribute, "SDL_GL_SetAttribute"},
		{&fnGLCreateContext, "SDL_GL_CreateContext"},
		{&fnGLDeleteContext, "SDL_GL_DeleteContext"},
		{&fnGLGetDrawableSize, "SDL_GL_GetDrawableSize"},
		{&fnGLSetSwapInterval, "SDL_GL_SetSwapInterval"},
		{&fnGLSwapWindow, "SDL_GL_SwapWindow"},
		{&fnGLGetProcAddress, "SDL_GL_GetProcAddress"},
		{&fnGLExtensionSupport, "SDL_GL_ExtensionSupported"},
	}
	for _, r := range required {
		sym, err := getSymbol(libHandle, r.name)
		if err != nil {
			return err
		}
		purego.RegisterFunc(r.fn, sym)
	}
	return nil
}

// ============================================================================
// String Helpers for FFI
// ============================================================================

// goString converts a C string pointer to a Go string
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), length)) != 0 {
		length++
		if length > 1<<16 {
			break
		}
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}
