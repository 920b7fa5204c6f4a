package elempath

import (
	"fmt"
	"strings"

	"github.com/Jumpaku/go-elempath/errors"
)

const (
	separator            = "/"
	defaultParentMarker  = ".."
	defaultCurrentMarker = "."
)

// Factory creates paths of one namespace.
// Paths created by different factories are never equal and cannot be relativized against each other.
type Factory struct {
	parentMarker  string
	currentMarker string
}

type FactoryOption func(*Factory)

// WithParentMarker sets the segment that steps up one level. The default is "..".
func WithParentMarker(marker string) FactoryOption {
	return func(f *Factory) {
		f.parentMarker = marker
	}
}

// WithCurrentMarker sets the segment that denotes the current level. The default is ".".
func WithCurrentMarker(marker string) FactoryOption {
	return func(f *Factory) {
		f.currentMarker = marker
	}
}

// NewFactory creates a new Factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		parentMarker:  defaultParentMarker,
		currentMarker: defaultCurrentMarker,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ParentMarker returns the segment that steps up one level.
func (f *Factory) ParentMarker() string {
	return f.parentMarker
}

// CurrentMarker returns the segment that denotes the current level.
func (f *Factory) CurrentMarker() string {
	return f.currentMarker
}

// Parse converts a slash-separated text into a path.
// A leading '/' makes the path absolute and empty segments are dropped, so "/" is the root and "" is the empty relative path.
// Segments are kept as written; use Normalize to resolve "." and "..".
func (f *Factory) Parse(text string) (path Path, err error) {
	if strings.ContainsRune(text, 0) {
		return nil, fmt.Errorf("path %q contains NUL character: %w", text, errors.ErrInvalidPath)
	}
	segments := []string{}
	for _, s := range strings.Split(text, separator) {
		if s == "" {
			continue
		}
		segments = append(segments, s)
	}
	return f.newPath(strings.HasPrefix(text, separator), segments), nil
}

// NewRelativePath creates a relative path of the given segments. The segments are copied.
func (f *Factory) NewRelativePath(segments ...string) *RelativePath {
	return newRelativePath(f, append([]string{}, segments...))
}

// NewAbsolutePath creates an absolute path of the given segments. The segments are copied.
// It returns the root when no segments are given.
func (f *Factory) NewAbsolutePath(segments ...string) Path {
	return f.newPath(true, append([]string{}, segments...))
}

// Root returns the root path of the factory.
func (f *Factory) Root() Root {
	return Root{factory: f}
}

// newPath takes ownership of segments.
func (f *Factory) newPath(absolute bool, segments []string) Path {
	switch {
	case !absolute:
		return newRelativePath(f, segments)
	case len(segments) == 0:
		return f.Root()
	default:
		return newAbsolutePath(f, segments)
	}
}

func (f *Factory) normalizeSegments(absolute bool, segments []string) []string {
	normalized := []string{}
	for _, s := range segments {
		switch {
		case s == f.currentMarker:
		case s != f.parentMarker:
			normalized = append(normalized, s)
		case len(normalized) > 0 && normalized[len(normalized)-1] != f.parentMarker:
			normalized = normalized[:len(normalized)-1]
		case !absolute:
			normalized = append(normalized, s)
		}
	}
	return normalized
}
