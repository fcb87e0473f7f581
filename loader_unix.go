//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package dynlib

import (
	"os"

	"github.com/ebitengine/purego"
)

// loadLibrary loads a shared library with the system dynamic loader.
func loadLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// closeLibrary unloads a shared library handle.
func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

// symbolAddress resolves an exported symbol from a loaded library, or 0.
func symbolAddress(handle uintptr, name string) uintptr {
	addr, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0
	}
	return addr
}

// moduleLoaded reports whether a library with the given name is mapped into
// the process. The RTLD_NOLOAD probe never loads anything; the reference it
// hands back is dropped immediately.
func moduleLoaded(name string) bool {
	handle, err := purego.Dlopen(name, rtldNoLoad|purego.RTLD_LAZY)
	if err != nil || handle == 0 {
		return false
	}
	purego.Dlclose(handle)
	return true
}

// moduleSymbol resolves an exported symbol from an already-loaded library,
// found by library name, or 0.
func moduleSymbol(library, name string) uintptr {
	handle, err := purego.Dlopen(library, rtldNoLoad|purego.RTLD_LAZY)
	if err != nil || handle == 0 {
		return 0
	}
	defer purego.Dlclose(handle)
	return symbolAddress(handle, name)
}

// registerFunc binds a resolved symbol address to a typed Go function.
func registerFunc(fptr interface{}, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

// getwd queries the process working directory with trailing separators
// stripped.
func getwd() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return StripTrailingSeparators(dir), true
}

// chdir sets the process working directory, reporting success.
func chdir(dir string) bool {
	return os.Chdir(dir) == nil
}
