package elempath

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/Jumpaku/go-elempath/errors"
)

// Path is a hierarchical path value made of an ordered sequence of named segments.
// Path values are immutable and safe for concurrent use.
// This is a sealed interface - paths are created by a Factory.
type Path interface {
	// Factory returns the factory that created the path. Paths of different factories never compare equal.
	Factory() *Factory
	// IsRoot reports whether the path is the root of its factory.
	IsRoot() bool
	// IsAbsolute reports whether the path is rooted.
	IsAbsolute() bool
	// Segments returns a copy of the segments from root to leaf.
	Segments() []string
	// SegmentCount returns the number of segments.
	SegmentCount() int
	// SegmentAt returns the segment at index. It panics if index is out of range.
	SegmentAt(index int) string
	// LastSegment returns the final segment. It panics if the path has no segments.
	LastSegment() string
	// FileName returns a single-segment relative path of the final segment, or false if the path has no segments.
	FileName() (name *RelativePath, ok bool)
	// Parent returns the path without its final segment, or false if there is none.
	Parent() (parent Path, ok bool)
	// Subpath returns the relative path of the segments in [begin, end). It panics on an invalid range.
	Subpath(begin, end int) *RelativePath
	// StartsWith reports whether the path starts with other segment by segment. It panics if other is nil.
	StartsWith(other Path) bool
	// EndsWith reports whether the path ends with other segment by segment. It panics if other is nil.
	EndsWith(other Path) bool
	// StartsWithString parses other with the path's factory and reports whether the path starts with it.
	StartsWithString(other string) (bool, error)
	// EndsWithString parses other with the path's factory and reports whether the path ends with it.
	EndsWithString(other string) (bool, error)
	// Iterator returns a new cursor over the single-segment views of the path.
	Iterator() *Iterator
	// All returns the single-segment views of the path in order.
	All() iter.Seq[*RelativePath]
	// Relativize returns the relative path that walks from the path to other. It panics if other is nil.
	Relativize(other Path) (*RelativePath, error)
	// Resolve returns other if it is absolute, otherwise the path followed by other.
	// It panics if other is nil or belongs to a different factory.
	Resolve(other Path) Path
	// Normalize returns the path with "." segments removed and "name/.." pairs collapsed.
	Normalize() Path
	Equal(other Path) bool
	String() string
	doNotImplement(Path)
}

// RelativePath is a path that is not rooted.
type RelativePath struct {
	elementPath
}

// AbsolutePath is a rooted path with at least one segment.
type AbsolutePath struct {
	elementPath
}

var (
	_ Path = (*RelativePath)(nil)
	_ Path = (*AbsolutePath)(nil)
)

func (*RelativePath) doNotImplement(Path) {}

func (*AbsolutePath) doNotImplement(Path) {}

// elementPath holds the segments shared by RelativePath and AbsolutePath.
// segments is never aliased by another value.
type elementPath struct {
	factory  *Factory
	absolute bool
	segments []string
}

func (p *elementPath) Factory() *Factory {
	return p.factory
}

func (p *elementPath) IsRoot() bool {
	return false
}

func (p *elementPath) IsAbsolute() bool {
	return p.absolute
}

func (p *elementPath) Segments() []string {
	return slices.Clone(p.segments)
}

func (p *elementPath) SegmentCount() int {
	return len(p.segments)
}

func (p *elementPath) SegmentAt(index int) string {
	if index < 0 || index >= len(p.segments) {
		panic(errors.NewFault(fmt.Sprintf("segment %d of path with %d segments", index, len(p.segments)), errors.ErrIndexOutOfRange))
	}
	return p.segments[index]
}

func (p *elementPath) LastSegment() string {
	if len(p.segments) == 0 {
		panic(errors.NewFault("last segment of path without segments", errors.ErrEmptyPath))
	}
	return p.segments[len(p.segments)-1]
}

func (p *elementPath) FileName() (name *RelativePath, ok bool) {
	if len(p.segments) == 0 {
		return nil, false
	}
	return newRelativePath(p.factory, []string{p.segments[len(p.segments)-1]}), true
}

func (p *elementPath) Parent() (parent Path, ok bool) {
	n := len(p.segments)
	if !p.absolute && n <= 1 {
		return nil, false
	}
	return p.factory.newPath(p.absolute, slices.Clone(p.segments[:n-1])), true
}

func (p *elementPath) Subpath(begin, end int) *RelativePath {
	return subpath(p.factory, p.segments, begin, end)
}

func (p *elementPath) StartsWith(other Path) bool {
	return startsWith(p.factory, p.absolute, p.segments, other)
}

func (p *elementPath) EndsWith(other Path) bool {
	return endsWith(p.factory, p.absolute, p.segments, other)
}

func (p *elementPath) StartsWithString(other string) (bool, error) {
	path, err := p.factory.Parse(other)
	if err != nil {
		return false, err
	}
	return p.StartsWith(path), nil
}

func (p *elementPath) EndsWithString(other string) (bool, error) {
	path, err := p.factory.Parse(other)
	if err != nil {
		return false, err
	}
	return p.EndsWith(path), nil
}

func (p *elementPath) Iterator() *Iterator {
	return newIterator(p.factory, p.segments)
}

func (p *elementPath) All() iter.Seq[*RelativePath] {
	return all(p.factory, p.segments)
}

func (p *elementPath) Relativize(other Path) (*RelativePath, error) {
	if err := checkRelativizable(p.factory, p.absolute, other); err != nil {
		return nil, fmt.Errorf("failed to relativize %q against %q: %w", other, p.String(), err)
	}
	if other.IsRoot() {
		return newRelativePath(p.factory, p.factory.relativeSegments(p.segments, nil)), nil
	}
	return p.buildRelativePathAgainst(other), nil
}

func (p *elementPath) Resolve(other Path) Path {
	return resolve(p.factory, p.absolute, p.segments, other)
}

func (p *elementPath) Normalize() Path {
	return p.factory.newPath(p.absolute, p.factory.normalizeSegments(p.absolute, p.segments))
}

func (p *elementPath) Equal(other Path) bool {
	return !isNil(other) &&
		other.Factory() == p.factory &&
		other.IsAbsolute() == p.absolute &&
		slices.Equal(segmentsOf(other), p.segments)
}

func (p *elementPath) String() string {
	if p.absolute {
		return separator + strings.Join(p.segments, separator)
	}
	return strings.Join(p.segments, separator)
}

// newRelativePath takes ownership of segments.
func newRelativePath(f *Factory, segments []string) *RelativePath {
	return &RelativePath{elementPath{factory: f, segments: segments}}
}

// newAbsolutePath takes ownership of segments, which must not be empty.
func newAbsolutePath(f *Factory, segments []string) *AbsolutePath {
	return &AbsolutePath{elementPath{factory: f, absolute: true, segments: segments}}
}

// asElementPath returns the element path behind p, or false if p is another kind of path.
func asElementPath(p Path) (*elementPath, bool) {
	switch p := p.(type) {
	case *RelativePath:
		if p != nil {
			return &p.elementPath, true
		}
	case *AbsolutePath:
		if p != nil {
			return &p.elementPath, true
		}
	}
	return nil, false
}

// isNil reports whether p is a nil interface or a nil path pointer.
func isNil(p Path) bool {
	switch p := p.(type) {
	case nil:
		return true
	case *RelativePath:
		return p == nil
	case *AbsolutePath:
		return p == nil
	}
	return false
}

// checkNotNil panics if other is nil. Paths passed as arguments must not be nil.
func checkNotNil(op string, other Path) {
	if isNil(other) {
		panic(errors.NewFault(op+" with nil path", errors.ErrInvalidPath))
	}
}

// segmentsOf returns the segments of p without copying. Callers must not modify the result.
func segmentsOf(p Path) []string {
	if e, ok := asElementPath(p); ok {
		return e.segments
	}
	return nil
}

func subpath(f *Factory, segments []string, begin, end int) *RelativePath {
	if begin < 0 || end > len(segments) || begin >= end {
		panic(errors.NewFault(fmt.Sprintf("subpath [%d, %d) of path with %d segments", begin, end, len(segments)), errors.ErrIndexOutOfRange))
	}
	return newRelativePath(f, slices.Clone(segments[begin:end]))
}

func resolve(f *Factory, absolute bool, segments []string, other Path) Path {
	checkNotNil("resolve", other)
	if other.Factory() != f {
		panic(errors.NewFault(fmt.Sprintf("resolve %q", other), errors.ErrProviderMismatch))
	}
	if other.IsAbsolute() {
		return other
	}
	return f.newPath(absolute, slices.Concat(segments, segmentsOf(other)))
}

func all(f *Factory, segments []string) iter.Seq[*RelativePath] {
	return func(yield func(*RelativePath) bool) {
		for _, s := range segments {
			if !yield(newRelativePath(f, []string{s})) {
				return
			}
		}
	}
}
