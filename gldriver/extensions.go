package gldriver

import "strings"

// glVersion is the parsed context version.
type glVersion struct {
	major, minor int
}

// atLeast reports whether the context version is at least major.minor.
func (v glVersion) atLeast(major, minor int) bool {
	if v.major != major {
		return v.major > major
	}
	return v.minor >= minor
}

// parseVersion extracts major.minor from a version string. The string may
// carry vendor suffixes ("2.1 Mesa 20.0.8", "4.6.0 NVIDIA 535.54") or an
// ES prefix ("OpenGL ES 2.0 ..."); anything unparseable yields 0.0, which
// fails every atLeast check.
func parseVersion(s string) glVersion {
	s = strings.TrimPrefix(s, "OpenGL ES-CM ")
	s = strings.TrimPrefix(s, "OpenGL ES ")

	var v glVersion
	dot := strings.IndexByte(s, '.')
	if dot <= 0 {
		return glVersion{}
	}
	for _, r := range s[:dot] {
		if r < '0' || r > '9' {
			return glVersion{}
		}
		v.major = v.major*10 + int(r-'0')
	}
	rest := s[dot+1:]
	for _, r := range rest {
		if r < '0' || r > '9' {
			break
		}
		v.minor = v.minor*10 + int(r-'0')
	}
	return v
}

// extensionSet is the space-separated extension string exploded into a
// lookup set.
type extensionSet map[string]struct{}

// parseExtensions splits the driver's extension string.
func parseExtensions(s string) extensionSet {
	set := make(extensionSet)
	for _, name := range strings.Fields(s) {
		set[name] = struct{}{}
	}
	return set
}

// has reports whether the named extension is present.
func (e extensionSet) has(name string) bool {
	_, ok := e[name]
	return ok
}
