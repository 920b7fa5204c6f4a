// Package elempathmust wraps the elempath and drivepath packages with panic-based error handling.
//
// It provides the operations of elempath that return errors and the Drive
// operations of drivepath.Resolver, but instead of returning errors, all
// exported functions and methods panic on failure. It is intended for
// paths known to be valid, such as literals in tests and program initialization.
package elempathmust

import (
	"github.com/Jumpaku/go-elempath"
)

// Parse converts text into a path using factory.
//
// It panics if the text is not a valid path (the underlying error would be ErrInvalidPath).
func Parse(factory *elempath.Factory, text string) (path elempath.Path) {
	return must1(factory.Parse(text))
}

// Relativize returns the relative path that walks from base to target.
//
// It panics if the paths belong to different factories (the underlying error would be ErrProviderMismatch)
// or if one is absolute and the other is relative (the underlying error would be ErrInvalidPath).
func Relativize(base, target elempath.Path) (rel *elempath.RelativePath) {
	return must1(base.Relativize(target))
}

// StartsWith parses other with the factory of path and reports whether path starts with it.
//
// It panics if other is not a valid path.
func StartsWith(path elempath.Path, other string) bool {
	return must1(path.StartsWithString(other))
}

// EndsWith parses other with the factory of path and reports whether path ends with it.
//
// It panics if other is not a valid path.
func EndsWith(path elempath.Path, other string) bool {
	return must1(path.EndsWithString(other))
}
