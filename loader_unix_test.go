//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package dynlib

import (
	"os"
	"testing"
)

// testLibrary returns a shared library to load, or skips. There is no
// library path that exists on every unix flavor, so integration runs point
// DYNLIB_TEST_LIBRARY at one (libc, libz, anything with exports).
func testLibrary(t *testing.T) string {
	t.Helper()
	path := os.Getenv("DYNLIB_TEST_LIBRARY")
	if path == "" {
		t.Skipf("Skipping integration test: set DYNLIB_TEST_LIBRARY to a loadable shared library")
	}
	return path
}

func TestOpenSharedLibrary(t *testing.T) {
	path := testLibrary(t)

	lib, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	if !lib.Valid() {
		t.Fatal("opened library reports invalid")
	}
	if err := lib.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if lib.Valid() {
		t.Error("library still valid after Close")
	}
	if err := lib.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestLoadResolveUnload(t *testing.T) {
	path := testLibrary(t)

	handle, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q): %v", path, err)
	}
	if handle == 0 {
		t.Fatal("Load returned a zero handle without error")
	}
	if addr := ResolveSymbol(handle, "dynlib_definitely_absent_symbol"); addr != 0 {
		t.Errorf("ResolveSymbol of a nonexistent export = %#x, want 0", addr)
	}
	if err := Unload(handle); err != nil {
		t.Errorf("Unload: %v", err)
	}
}
