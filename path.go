package dynlib

import "strings"

// Path separators recognized by the path helpers. Both the Windows and the
// POSIX separator are accepted on every platform, so one path grammar parses
// the same way everywhere.
const separators = `\/`

// CurrentDir is returned by ParentDir for paths that have no parent
// component left.
const CurrentDir = "."

// FindDriveLetter returns the index of the last character of a leading
// drive-letter prefix such as "C:", which is always 1, or -1 when path does
// not begin with one.
func FindDriveLetter(path string) int {
	if len(path) >= 2 && path[1] == ':' &&
		(('A' <= path[0] && path[0] <= 'Z') || ('a' <= path[0] && path[0] <= 'z')) {
		return 1
	}
	return -1
}

// IsSeparator reports whether c is a path separator character.
func IsSeparator(c uint8) bool {
	return strings.IndexByte(separators, c) >= 0
}

// StripTrailingSeparators removes separator characters from the end of path.
// The scan never reaches into a drive-letter prefix, and a path rooted on a
// leading double separator keeps both of them: stripping stops rather than
// reduce such a root to a single separator, so three or more leading
// separators collapse to exactly two. Applying it twice yields the same
// result as applying it once.
func StripTrailingSeparators(path string) string {
	// start is the first index the scan may remove: 1 with no drive letter,
	// so a bare root separator survives, and 3 with one, so the separator
	// following "C:" survives.
	start := FindDriveLetter(path) + 2
	n := len(path)
	for n > start && IsSeparator(path[n-1]) {
		if n == start+1 && IsSeparator(path[start-1]) {
			// A leading double-separator root; keep both.
			break
		}
		n--
	}
	return path[:n]
}

// ParentDir returns the directory containing path: the path with its final
// component trimmed. A path without separators is in the current directory,
// so its parent is the drive-letter segment alone, or CurrentDir when there
// is none. The parent of a root, including a double-separator root, is that
// root itself.
func ParentDir(path string) string {
	path = StripTrailingSeparators(path)

	// A drive letter, if any, always remains in the output. letter is -1
	// without one, which keeps the index arithmetic below valid.
	letter := FindDriveLetter(path)

	lastSep := strings.LastIndexAny(path, separators)
	switch {
	case lastSep == -1:
		// path is in the current directory.
		path = path[:letter+1]
	case lastSep == letter+1:
		// path is in the root directory.
		path = path[:letter+2]
	case lastSep == letter+2 && IsSeparator(path[letter+1]):
		// path is on a double-separator root; leave it intact to keep the
		// alternate root form.
		path = path[:letter+3]
	case lastSep != 0:
		// path is somewhere else; trim the basename.
		path = path[:lastSep]
	}

	path = StripTrailingSeparators(path)
	if path == "" {
		path = CurrentDir
	}
	return path
}
