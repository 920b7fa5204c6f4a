package elempath

import (
	"fmt"
	"io"

	"github.com/Jumpaku/go-elempath/errors"
)

// Iterator is a forward-only cursor over the single-segment views of a path.
// Each Iterator has its own position; an Iterator itself is not safe for concurrent use.
type Iterator struct {
	factory  *Factory
	segments []string
	offset   int
}

func newIterator(f *Factory, segments []string) *Iterator {
	return &Iterator{factory: f, segments: segments}
}

// HasNext reports whether Next returns another segment view.
func (it *Iterator) HasNext() bool {
	return it.offset < len(it.segments)
}

// Next returns a new single-segment relative path of the next segment.
// It returns io.EOF when no segments remain.
func (it *Iterator) Next() (*RelativePath, error) {
	if !it.HasNext() {
		return nil, io.EOF
	}
	segment := it.segments[it.offset]
	it.offset++
	return newRelativePath(it.factory, []string{segment}), nil
}

// Remove always fails because paths are immutable.
func (it *Iterator) Remove() error {
	return fmt.Errorf("can't remove from a path iterator: %w", errors.ErrUnsupported)
}
