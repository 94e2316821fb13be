//go:build darwin && !ios

package sdl

// detectDarwin returns macOS on non-iOS darwin builds
func detectDarwin() OS {
	return OSMacOS
}
