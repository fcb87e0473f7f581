//go:build !windows && !darwin && !freebsd && !linux
// +build !windows,!darwin,!freebsd,!linux

package dynlib

import (
	"errors"
	"os"
)

var errNotImplemented = errors.New("not implemented")

func loadLibrary(_ string) (uintptr, error) { return 0, errNotImplemented }

func closeLibrary(_ uintptr) error { return errNotImplemented }

func symbolAddress(_ uintptr, _ string) uintptr { return 0 }

func moduleLoaded(_ string) bool { return false }

func moduleSymbol(_, _ string) uintptr { return 0 }

func registerFunc(_ interface{}, _ uintptr) { panic(errNotImplemented) }

func getwd() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return StripTrailingSeparators(dir), true
}

func chdir(dir string) bool {
	return os.Chdir(dir) == nil
}
