package errors

import (
	"errors"
)

var (
	ErrInvalidPath              = errors.New("invalid path")
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrEmptyPath                = errors.New("empty path")
	ErrKindMismatch             = errors.New("path kind mismatch")
	ErrProviderMismatch         = errors.New("path provider mismatch")
	ErrUnsupported              = errors.ErrUnsupported
	ErrAPIError                 = errors.New("api error")
	ErrNotFound                 = errors.New("not found")
	ErrMultiParentsNotSupported = errors.New("multi parents not supported")
	ErrFault                    = errors.New("fault")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

// NewFault constructs the payload of a panic raised on a contract violation by the caller.
// The returned error matches ErrFault and cause with errors.Is.
func NewFault(msg string, cause error) error {
	return &wrapError{
		underlying: ErrFault,
		msg:        msg,
		cause:      cause,
	}
}

func NewAPIError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrAPIError,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
