//go:build windows
// +build windows

package dynlib

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// loadLibrary loads a DLL with the native Windows loader.
func loadLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load library: %w", err)
	}
	return uintptr(handle), nil
}

// closeLibrary releases a handle obtained from loadLibrary.
func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

// symbolAddress resolves an exported symbol from a loaded module, or 0.
func symbolAddress(handle uintptr, name string) uintptr {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0
	}
	return addr
}

// moduleLoaded reports whether a module with the given name is mapped into
// the process. GetModuleHandle does not change the module's reference count.
func moduleLoaded(name string) bool {
	return moduleHandle(name) != 0
}

// moduleSymbol resolves an exported symbol from an already-loaded module,
// found by module name, or 0.
func moduleSymbol(library, name string) uintptr {
	handle := moduleHandle(library)
	if handle == 0 {
		return 0
	}
	return symbolAddress(handle, name)
}

func moduleHandle(name string) uintptr {
	namep, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0
	}
	handle, err := windows.GetModuleHandle(namep)
	if err != nil {
		return 0
	}
	return uintptr(handle)
}

// registerFunc binds a resolved symbol address to a typed Go function.
func registerFunc(fptr interface{}, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

// getwd queries the process working directory with the platform call,
// failing on an empty or oversized result. Trailing separators are stripped.
func getwd() (string, bool) {
	var buf [windows.MAX_PATH]uint16
	n, err := windows.GetCurrentDirectory(uint32(len(buf)), &buf[0])
	if err != nil || n == 0 || n > uint32(len(buf)) {
		return "", false
	}
	return StripTrailingSeparators(windows.UTF16ToString(buf[:n])), true
}

// chdir sets the process working directory, reporting success.
func chdir(dir string) bool {
	dirp, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return false
	}
	return windows.SetCurrentDirectory(dirp) == nil
}
