package elempath

// This file is part of the package tests (package elempath) and provides
// helpers that allow tests in the external package to access internal
// package constructs.

// BuildRelativePathAgainst calls the unchecked relativization of p against other.
// It panics if p is not an element path.
func BuildRelativePathAgainst(p, other Path) *RelativePath {
	e, ok := asElementPath(p)
	if !ok {
		panic("BuildRelativePathAgainst: not an element path")
	}
	return e.buildRelativePathAgainst(other)
}

// FirstDifferenceIndex exposes firstDifferenceIndex.
func FirstDifferenceIndex(l1, l2 []string) int {
	return firstDifferenceIndex(l1, l2)
}
