// Package dynlib loads native shared libraries at runtime, resolves their
// exported symbols, and manages the lifetime of the resulting handles.
package dynlib

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Library owns, or refers to, exactly one native library and resolves
// symbols from it.
//
// A Library constructed from a path or a handle owns that handle: Close
// unloads it exactly once, and ownership moves only through Release or
// Reset. A Library constructed with ByName never owns anything; it tracks a
// library that other code keeps loaded. A Library must not be copied.
//
// A nil *Library behaves as an absent reference: Valid, Name, Symbol, Bind,
// Release, and Close all fail soft, so holders of a cleared reference get
// zero results instead of crashes.
type Library struct {
	name   string
	handle uintptr
}

// Open loads the library at path and owns the resulting handle. A path with
// a directory component is made absolute first, so the loader still finds it
// while the working directory is switched away; a bare file name passes
// through untouched and resolves through the loader's own search order.
func Open(path string) (*Library, error) {
	if strings.ContainsAny(path, separators) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for %s: %w", path, err)
		}
		path = abs
	}
	handle, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library at %s: %w", path, err)
	}
	return &Library{handle: handle}, nil
}

// FromHandle adopts ownership of an existing native handle. The result is
// valid only when handle is nonzero.
func FromHandle(handle uintptr) *Library {
	return &Library{handle: handle}
}

// ByName refers to a library expected to be already loaded in the process.
// The returned Library never owns a handle; its validity follows the
// process module table and is checked on every call.
func ByName(name string) *Library {
	return &Library{name: name}
}

// Valid reports whether symbol resolution can work: an owned handle is
// present, or the named library is currently resident. For a ByName library
// this is evaluated live, so a library unloaded elsewhere makes Valid
// report false again.
func (l *Library) Valid() bool {
	if l == nil {
		return false
	}
	return l.handle != 0 || IsLoaded(l.name)
}

// Name returns the well-known library name for a ByName library, or "".
func (l *Library) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Symbol returns the address of an exported symbol, or 0 when the Library
// is not valid or the symbol cannot be resolved. A ByName library resolves
// through the process module table even if a handle was adopted later.
// Addresses are not cached.
func (l *Library) Symbol(name string) uintptr {
	if !l.Valid() {
		return 0
	}
	if l.name == "" {
		return ResolveSymbol(l.handle, name)
	}
	return ResolveLoadedSymbol(l.name, name)
}

// Reset unloads the owned handle, if any, and adopts handle in its place.
// The stored library name is unaffected.
func (l *Library) Reset(handle uintptr) {
	Unload(l.handle)
	l.handle = handle
}

// Release returns the owned handle and abandons ownership; the caller
// becomes responsible for unloading it. A ByName library owns nothing, so
// Release returns 0 and the library keeps tracking its name.
func (l *Library) Release() uintptr {
	if l == nil {
		return 0
	}
	handle := l.handle
	l.handle = 0
	return handle
}

// Close unloads the owned handle. It is a no-op on a Library that owns
// nothing, including after Release, and calling it again does nothing.
// Symbols resolved or bound through the Library must not be used after
// Close.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := Unload(l.handle)
	l.handle = 0
	return err
}
