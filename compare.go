package elempath

import "slices"

// startsWith compares segment by segment. An empty relative prefix only matches an empty relative path.
func startsWith(f *Factory, absolute bool, segments []string, other Path) bool {
	checkNotNil("starts with", other)
	if other.Factory() != f || other.IsAbsolute() != absolute {
		return false
	}
	prefix := segmentsOf(other)
	if len(prefix) > len(segments) {
		return false
	}
	if !absolute && len(prefix) == 0 {
		return len(segments) == 0
	}
	return slices.Equal(segments[:len(prefix)], prefix)
}

// endsWith compares segment by segment. An absolute suffix must match the whole path.
func endsWith(f *Factory, absolute bool, segments []string, other Path) bool {
	checkNotNil("ends with", other)
	if other.Factory() != f {
		return false
	}
	suffix := segmentsOf(other)
	if other.IsAbsolute() {
		return absolute && slices.Equal(segments, suffix)
	}
	if len(suffix) == 0 {
		return !absolute && len(segments) == 0
	}
	if len(suffix) > len(segments) {
		return false
	}
	return slices.Equal(segments[len(segments)-len(suffix):], suffix)
}
