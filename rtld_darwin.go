//go:build darwin
// +build darwin

package dynlib

// RTLD_NOLOAD from the macOS dlfcn.h. Not exported by purego.
const rtldNoLoad = 0x10
