//go:build freebsd
// +build freebsd

package dynlib

// RTLD_NOLOAD from the FreeBSD dlfcn.h. Not exported by purego.
const rtldNoLoad = 0x02000
