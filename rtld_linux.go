//go:build linux
// +build linux

package dynlib

// RTLD_NOLOAD for glibc and musl. Not exported by purego.
const rtldNoLoad = 0x00004
