//go:build windows

package ffi

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// openLibrary loads SDL2.dll, searching the executable's directory before
// the system directories.
func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibraryEx(path, 0, windows.LOAD_LIBRARY_SEARCH_APPLICATION_DIR|windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return 0, fmt.Errorf("LoadLibraryEx(%s) failed: %w", path, err)
	}
	return uintptr(h), nil
}

// getSymbol retrieves a symbol from the loaded module.
func getSymbol(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, fmt.Errorf("GetProcAddress(%s) failed: %w", name, err)
	}
	return addr, nil
}
