//go:build darwin || linux

package ffi

import (
	"github.com/ebitengine/purego"
)

// openLibrary loads a dynamic library, resolving its dependencies eagerly.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// getSymbol retrieves a symbol from the loaded library.
func getSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
