package elempath

import (
	"fmt"
	"iter"

	"github.com/Jumpaku/go-elempath/errors"
)

// Root is the rooted path without segments.
// It is not an element path: relativizing an element path against it by kind is a fault,
// while Relativize treats it as an absolute path with no segments.
type Root struct {
	factory *Factory
}

var _ Path = Root{}

func (Root) doNotImplement(Path) {}

func (r Root) Factory() *Factory {
	return r.factory
}

func (r Root) IsRoot() bool {
	return true
}

func (r Root) IsAbsolute() bool {
	return true
}

func (r Root) Segments() []string {
	return []string{}
}

func (r Root) SegmentCount() int {
	return 0
}

func (r Root) SegmentAt(index int) string {
	panic(errors.NewFault(fmt.Sprintf("segment %d of root", index), errors.ErrIndexOutOfRange))
}

func (r Root) LastSegment() string {
	panic(errors.NewFault("last segment of root", errors.ErrEmptyPath))
}

func (r Root) FileName() (name *RelativePath, ok bool) {
	return nil, false
}

func (r Root) Parent() (parent Path, ok bool) {
	return nil, false
}

func (r Root) Subpath(begin, end int) *RelativePath {
	return subpath(r.factory, nil, begin, end)
}

func (r Root) StartsWith(other Path) bool {
	return startsWith(r.factory, true, nil, other)
}

func (r Root) EndsWith(other Path) bool {
	return endsWith(r.factory, true, nil, other)
}

func (r Root) StartsWithString(other string) (bool, error) {
	path, err := r.factory.Parse(other)
	if err != nil {
		return false, err
	}
	return r.StartsWith(path), nil
}

func (r Root) EndsWithString(other string) (bool, error) {
	path, err := r.factory.Parse(other)
	if err != nil {
		return false, err
	}
	return r.EndsWith(path), nil
}

func (r Root) Iterator() *Iterator {
	return newIterator(r.factory, nil)
}

func (r Root) All() iter.Seq[*RelativePath] {
	return all(r.factory, nil)
}

func (r Root) Relativize(other Path) (*RelativePath, error) {
	if err := checkRelativizable(r.factory, true, other); err != nil {
		return nil, fmt.Errorf("failed to relativize %q against %q: %w", other, r.String(), err)
	}
	return newRelativePath(r.factory, r.factory.relativeSegments(nil, segmentsOf(other))), nil
}

func (r Root) Resolve(other Path) Path {
	return resolve(r.factory, true, nil, other)
}

func (r Root) Normalize() Path {
	return r
}

func (r Root) Equal(other Path) bool {
	return !isNil(other) && other.IsRoot() && other.Factory() == r.factory
}

func (r Root) String() string {
	return separator
}
