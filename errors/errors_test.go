package errors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/Jumpaku/go-elempath/errors"
)

func TestErrVars_IsAndMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrInvalidPath", ErrInvalidPath, "invalid path"},
		{"ErrIndexOutOfRange", ErrIndexOutOfRange, "index out of range"},
		{"ErrEmptyPath", ErrEmptyPath, "empty path"},
		{"ErrKindMismatch", ErrKindMismatch, "path kind mismatch"},
		{"ErrProviderMismatch", ErrProviderMismatch, "path provider mismatch"},
		{"ErrUnsupported", ErrUnsupported, "unsupported operation"},
		{"ErrAPIError", ErrAPIError, "api error"},
		{"ErrAPIError2", NewAPIError("", fmt.Errorf("")), "api error"},
		{"ErrFault", ErrFault, "fault"},
		{"ErrFault2", NewFault("", ErrEmptyPath), "empty path"},
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrMultiParentsNotSupported", ErrMultiParentsNotSupported, "multi parents not supported"},
	}

	for _, c := range cases {
		t.Run(c.name+"/IsWrapped", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !errors.Is(wrapped, c.err) {
				t.Fatalf("errors.Is(wrapped, %s) = false, want true", c.name)
			}
		})

		t.Run(c.name+"/Message", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !strings.Contains(wrapped.Error(), c.msg) {
				t.Fatalf("%s.Error() = %q does not contain %q", c.name, wrapped.Error(), c.msg)
			}
		})
	}
}

func TestNewFault_MatchesFaultAndCause(t *testing.T) {
	err := NewFault("segment 3 of 2", ErrIndexOutOfRange)
	if !errors.Is(err, ErrFault) {
		t.Fatalf("errors.Is(err, ErrFault) = false, want true")
	}
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("errors.Is(err, ErrIndexOutOfRange) = false, want true")
	}
	if got, want := err.Error(), "fault: segment 3 of 2: index out of range"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrUnsupported_MatchesStdlib(t *testing.T) {
	if !errors.Is(ErrUnsupported, errors.ErrUnsupported) {
		t.Fatalf("errors.Is(ErrUnsupported, errors.ErrUnsupported) = false, want true")
	}
}
