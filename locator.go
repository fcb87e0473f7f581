package dynlib

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Platform describes the running system for the purpose of choosing a
// library build: the file naming convention plus the CPU features that
// decide which build variant can run without illegal-instruction faults.
type Platform struct {
	OS             string
	Arch           string
	Prefix         string
	Extension      string
	SupportsAVX    bool
	SupportsAVX2   bool
	SupportsAVX512 bool
}

// DetectPlatform returns the Platform for the running system, with CPU
// capabilities detected rather than assumed.
func DetectPlatform() *Platform {
	p := &Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	switch runtime.GOOS {
	case "darwin":
		p.Prefix = "lib"
		p.Extension = ".dylib"
	case "windows":
		p.Extension = ".dll"
	default:
		p.Prefix = "lib"
		p.Extension = ".so"
	}
	if runtime.GOARCH == "amd64" {
		p.SupportsAVX = cpuid.CPU.Supports(cpuid.AVX)
		p.SupportsAVX2 = cpuid.CPU.Supports(cpuid.AVX2)
		p.SupportsAVX512 = cpuid.CPU.Supports(cpuid.AVX512F)
	}
	return p
}

// LibraryName returns the conventional file name of a library on the given
// operating system: lib<base>.so, lib<base>.dylib, or <base>.dll.
func LibraryName(goos, base string) string {
	switch goos {
	case "darwin":
		return "lib" + base + ".dylib"
	case "windows":
		return base + ".dll"
	default:
		return "lib" + base + ".so"
	}
}

// variants orders library build flavors from most to least demanding.
var variants = []string{"avx512", "avx2", "avx", "fallback"}

// detectVariant classifies a library file name by build flavor.
func detectVariant(filename string) string {
	switch {
	case strings.Contains(filename, "avx512"):
		return "avx512"
	case strings.Contains(filename, "avx2"):
		return "avx2"
	case strings.Contains(filename, "avx"):
		return "avx"
	default:
		return "fallback"
	}
}

// supportsVariant reports whether the platform can run a build flavor.
func (p *Platform) supportsVariant(variant string) bool {
	switch variant {
	case "avx512":
		return p.SupportsAVX512
	case "avx2":
		return p.SupportsAVX2
	case "avx":
		return p.SupportsAVX
	default:
		return true
	}
}

// FindLibrary returns the path of the best build of the base library in dir
// that the current machine can run: the plain conventional name when
// present, otherwise the most capable variant build the CPU supports. It
// returns "" when dir holds no usable build.
func FindLibrary(dir, base string) string {
	return findLibrary(dir, base, DetectPlatform())
}

func findLibrary(dir, base string, p *Platform) string {
	// An exact conventional name wins outright.
	plain := filepath.Join(dir, p.Prefix+base+p.Extension)
	if _, err := os.Stat(plain); err == nil {
		return plain
	}
	for _, variant := range variants {
		if !p.supportsVariant(variant) {
			continue
		}
		path := filepath.Join(dir, p.Prefix+base+"-"+variant+p.Extension)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// OpenIn loads the best build of the base library found in dir: FindLibrary
// composed with Open, for callers that ship several variant builds side by
// side.
func OpenIn(dir, base string) (*Library, error) {
	path := FindLibrary(dir, base)
	if path == "" {
		return nil, fmt.Errorf("no usable build of %s in %s", base, dir)
	}
	return Open(path)
}
