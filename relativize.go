package elempath

import (
	"fmt"

	"github.com/Jumpaku/go-elempath/errors"
	"github.com/samber/lo"
)

// buildRelativePathAgainst returns the path that ascends from p to the common ancestor with other and then descends to other.
// It panics if other is not an element path.
func (p *elementPath) buildRelativePathAgainst(other Path) *RelativePath {
	otherPath, ok := asElementPath(other)
	if !ok {
		panic(errors.NewFault(fmt.Sprintf("relativize against %T", other), errors.ErrKindMismatch))
	}
	return newRelativePath(p.factory, p.factory.relativeSegments(p.segments, otherPath.segments))
}

// relativeSegments returns a new slice of parent markers for each segment of from beyond the common prefix,
// followed by the segments of to beyond the common prefix.
func (f *Factory) relativeSegments(from, to []string) []string {
	k := firstDifferenceIndex(from, to)
	up := lo.Times(len(from)-k, func(int) string { return f.parentMarker })
	return append(up, to[k:]...)
}

func firstDifferenceIndex(l1, l2 []string) int {
	endIndex := min(len(l1), len(l2))
	for i := 0; i < endIndex; i++ {
		if l1[i] != l2[i] {
			return i
		}
	}
	return endIndex
}

func checkRelativizable(f *Factory, absolute bool, other Path) error {
	checkNotNil("relativize", other)
	if other.Factory() != f {
		return fmt.Errorf("paths of different factories: %w", errors.ErrProviderMismatch)
	}
	if other.IsAbsolute() != absolute {
		return fmt.Errorf("only paths of the same type can be relativized: %w", errors.ErrInvalidPath)
	}
	return nil
}
