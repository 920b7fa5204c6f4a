package elempathmust_test

import (
	"errors"
	"testing"

	"github.com/Jumpaku/go-elempath"
	"github.com/Jumpaku/go-elempath/elempathmust"
	pathErrors "github.com/Jumpaku/go-elempath/errors"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err, ok := recover().(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want error matching %v", err, target)
		}
	}()
	fn()
}

func TestParse(t *testing.T) {
	f := elempath.NewFactory()
	if got := elempathmust.Parse(f, "/a/b").String(); got != "/a/b" {
		t.Errorf("Parse() = %q, want %q", got, "/a/b")
	}
	expectPanic(t, pathErrors.ErrInvalidPath, func() { elempathmust.Parse(f, "\x00") })
}

func TestRelativize(t *testing.T) {
	f := elempath.NewFactory()
	got := elempathmust.Relativize(elempathmust.Parse(f, "/a/b/c"), elempathmust.Parse(f, "/a/b/d/e"))
	if got.String() != "../d/e" {
		t.Errorf("Relativize() = %q, want %q", got, "../d/e")
	}
	expectPanic(t, pathErrors.ErrInvalidPath, func() {
		elempathmust.Relativize(elempathmust.Parse(f, "/a"), elempathmust.Parse(f, "a"))
	})
	expectPanic(t, pathErrors.ErrProviderMismatch, func() {
		elempathmust.Relativize(elempathmust.Parse(f, "a"), elempath.NewFactory().NewRelativePath("a"))
	})
}

func TestStartsWithEndsWith(t *testing.T) {
	f := elempath.NewFactory()
	p := elempathmust.Parse(f, "/a/b/c")

	cases := []struct {
		name  string
		fn    func(elempath.Path, string) bool
		other string
		want  bool
	}{
		{"StartsWith/prefix", elempathmust.StartsWith, "/a/b", true},
		{"StartsWith/relative", elempathmust.StartsWith, "a/b", false},
		{"EndsWith/suffix", elempathmust.EndsWith, "b/c", true},
		{"EndsWith/other", elempathmust.EndsWith, "b", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.fn(p, c.other); got != c.want {
				t.Errorf("%s(%q, %q) = %v, want %v", c.name, p, c.other, got, c.want)
			}
		})
	}

	expectPanic(t, pathErrors.ErrInvalidPath, func() { elempathmust.StartsWith(p, "\x00") })
	expectPanic(t, pathErrors.ErrInvalidPath, func() { elempathmust.EndsWith(p, "\x00") })
}
