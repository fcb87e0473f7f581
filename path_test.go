package dynlib

import "testing"

func TestFindDriveLetter(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"C:", 1},
		{"c:", 1},
		{`C:\`, 1},
		{"z:/tmp", 1},
		{"C:relative", 1},
		{"", -1},
		{"C", -1},
		{":", -1},
		{"1:", -1},
		{"+:", -1},
		{`\C:`, -1},
		{"/tmp", -1},
	}
	for _, test := range tests {
		if got := FindDriveLetter(test.path); got != test.want {
			t.Errorf("FindDriveLetter(%q) = %d, want %d", test.path, got, test.want)
		}
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []uint8{'\\', '/'} {
		if !IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = false, want true", c)
		}
	}
	for _, c := range []uint8{'a', ':', '.', 0} {
		if IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = true, want false", c)
		}
	}
}

func TestStripTrailingSeparators(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"/", "/"},
		{"//", "//"},
		{"///", "//"},
		{"////", "//"},
		{`\\`, `\\`},
		{"a", "a"},
		{"a/", "a"},
		{"a//", "a"},
		{`a\\/`, "a"},
		{"/a/", "/a"},
		{"//a//", "//a"},
		{"C:", "C:"},
		{`C:\`, `C:\`},
		{`C:\\`, `C:\\`},
		{`C:\\\`, `C:\\`},
		{`C:\a\`, `C:\a`},
		{"C:a//", "C:a"},
		{`C:/a\`, "C:/a"},
	}
	for _, test := range tests {
		got := StripTrailingSeparators(test.path)
		if got != test.want {
			t.Errorf("StripTrailingSeparators(%q) = %q, want %q", test.path, got, test.want)
		}
		if again := StripTrailingSeparators(got); again != got {
			t.Errorf("StripTrailingSeparators(%q) = %q, not idempotent: second pass gave %q", test.path, got, again)
		}
	}
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`C:\a\b`, `C:\a`},
		{`C:\a`, `C:\`},
		{`C:\`, `C:\`},
		{`C://a`, "C://"},
		{"C:", "C:"},
		{"C:a", "C:"},
		{"/a/b", "/a"},
		{"/a/b/", "/a"},
		{"/a", "/"},
		{"/", "/"},
		{"//", "//"},
		{"///", "//"},
		{"//a", "//"},
		{"//a/b", "//a"},
		{"a/b", "a"},
		{`a\b/c`, `a\b`},
		{"a///", CurrentDir},
		{"a", CurrentDir},
		{".", CurrentDir},
		{"", CurrentDir},
	}
	for _, test := range tests {
		if got := ParentDir(test.path); got != test.want {
			t.Errorf("ParentDir(%q) = %q, want %q", test.path, got, test.want)
		}
	}
}

// Walking up a relative path ends at CurrentDir; walking up a rooted path
// ends at its root. Either way a fixed point is reached in a handful of
// steps, so callers can iterate without guarding against cycles.
func TestParentDirReachesFixedPoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`a\b\c\d`, CurrentDir},
		{"one/two/three", CurrentDir},
		{"/very/deep/nested/path", "/"},
		{`C:\x\y\z`, `C:\`},
		{"//host/share/file", "//"},
		{`C:a\b`, "C:"},
	}
	for _, test := range tests {
		path := test.path
		for i := 0; i < 10; i++ {
			next := ParentDir(path)
			if next == path {
				break
			}
			path = next
		}
		if path != test.want {
			t.Errorf("iterating ParentDir from %q settled at %q, want %q", test.path, path, test.want)
		}
		if again := ParentDir(path); again != path {
			t.Errorf("ParentDir(%q) = %q, want the fixed point itself", path, again)
		}
	}
}
