package sdl

import (
	"runtime"

	"github.com/agiangrant/framehost"
)

// OS identifies the operating system the windowing backend runs on.
type OS string

const (
	OSMacOS   OS = "darwin"
	OSLinux   OS = "linux"
	OSWindows OS = "windows"
	OSUnknown OS = "unknown"
)

// CurrentOS returns the operating system the app is running on
func CurrentOS() OS {
	switch runtime.GOOS {
	case "darwin":
		return detectDarwin()
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// IsDesktop returns true if SDL2 can open a window on the current OS.
func IsDesktop() bool {
	os := CurrentOS()
	return os == OSMacOS || os == OSLinux || os == OSWindows
}

// NeedsForwardCompatible returns true if the context must be requested as
// forward compatible. macOS only hands out core profiles above 2.1 that way.
func NeedsForwardCompatible(os OS, ctx framehost.ContextConfig) bool {
	return os == OSMacOS && ctx.Profile == framehost.ProfileCore && ctx.Major >= 3
}

// MaxCoreVersion returns the highest core profile version the OS is known to
// provide, or 0, 0 if there is no fixed ceiling.
func MaxCoreVersion(os OS) (major, minor int) {
	if os == OSMacOS {
		return 4, 1
	}
	return 0, 0
}
