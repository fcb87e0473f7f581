package dynlib

import "sync"

// loadMu serializes loads. The working-directory switch below is a
// process-wide side effect, so concurrent loads would otherwise race on the
// directory and could restore it out of order.
var loadMu sync.Mutex

// Load opens the native library at path and returns its handle.
//
// The process working directory is switched to the library's directory for
// the duration of the platform load call, because the library may depend on
// companion libraries sitting next to it and the loader search path covers
// the working directory. The previous directory is restored before Load
// returns, whether or not the load succeeded. Both steps are best-effort: if
// the current directory cannot be determined, the load proceeds without
// switching at all, and a failed switch still loads from wherever the
// process happens to be.
//
// Loads are serialized against each other, but the directory switch is still
// visible to the rest of the process while a Load is in flight.
func Load(path string) (uintptr, error) {
	return loadWith(path, loadLibrary)
}

// loadWith implements Load with the platform loader as a parameter.
func loadWith(path string, open func(string) (uintptr, error)) (uintptr, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	restore := false
	cwd, ok := getwd()
	if ok {
		if dir := ParentDir(path); dir != "" {
			chdir(dir)
			restore = true
		}
	}
	handle, err := open(path)
	if restore {
		chdir(cwd)
	}
	return handle, err
}

// Unload releases a handle obtained from Load. Unloading a zero handle is a
// no-op. A handle must not be unloaded twice.
func Unload(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return closeLibrary(handle)
}

// IsLoaded reports whether a library with the given name is already mapped
// into the process, whether or not this package loaded it. The empty name
// reports false.
func IsLoaded(name string) bool {
	if name == "" {
		return false
	}
	return moduleLoaded(name)
}

// ResolveSymbol returns the address of an exported symbol, or 0 when handle
// is zero, name is empty, or the library exports no such symbol.
func ResolveSymbol(handle uintptr, name string) uintptr {
	if handle == 0 || name == "" {
		return 0
	}
	return symbolAddress(handle, name)
}

// ResolveLoadedSymbol returns the address of an exported symbol from an
// already-loaded library, found by library name. It returns 0 when no such
// library is resident or it exports no such symbol.
func ResolveLoadedSymbol(library, name string) uintptr {
	if library == "" || name == "" {
		return 0
	}
	return moduleSymbol(library, name)
}
