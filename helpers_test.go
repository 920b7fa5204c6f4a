package elempath_test

import (
	"errors"
	"testing"

	"github.com/Jumpaku/go-elempath"
	pathErrors "github.com/Jumpaku/go-elempath/errors"
)

func parse(t *testing.T, f *elempath.Factory, text string) elempath.Path {
	t.Helper()
	p, err := f.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return p
}

// expectFault fails the test unless fn panics with a fault matching target.
func expectFault(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("no panic, want fault %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value = (%T) %v, want error", r, r)
		}
		if !errors.Is(err, pathErrors.ErrFault) || !errors.Is(err, target) {
			t.Fatalf("panic error = %v, want fault matching %v", err, target)
		}
	}()
	fn()
}
