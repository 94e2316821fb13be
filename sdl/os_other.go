//go:build !darwin || ios

package sdl

// detectDarwin is only reached on darwin; iOS has no SDL2 desktop window.
func detectDarwin() OS {
	return OSUnknown
}
