package mac

import (
	"errors"
	"fmt"
)

// The error kinds returned by this package.  Use errors.Is() to test
// for them; the concrete errors carry more detail in their message.
var (
	// ErrUnknownAlgorithm is returned when an algorithm id or name is
	// not registered, is disabled, or lacks a complete operation table.
	ErrUnknownAlgorithm = errors.New("unknown MAC algorithm")

	// ErrUnsupportedOperation is returned for control commands and
	// info queries this package does not recognize, and for reset on
	// an algorithm that does not bind one.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArgument is returned when generic argument validation
	// fails before the call reaches the algorithm.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrVerificationFailed is returned by Verify when the computed
	// MAC does not match the expected one.
	ErrVerificationFailed = errors.New("MAC verification failed")

	// ErrOutOfMemory is returned when a memory pool cannot satisfy an
	// allocation; the underlying cause is wrapped.
	ErrOutOfMemory = errors.New("allocation failed")
)

type macError struct {
	kind  error // one of the Err* sentinels above
	msg   string
	inner error
}

func (err *macError) Error() string {
	if err.inner != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.inner.Error())
	}
	return err.msg
}

func (err *macError) Unwrap() []error {
	if err.inner != nil {
		return []error{err.kind, err.inner}
	}
	return []error{err.kind}
}

// Formats a new error of the given kind.
func errorf(kind error, format string, a ...interface{}) error {
	return &macError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

// Formats a new error of the given kind that wraps another.
func wrapErrorf(kind, inner error, format string, a ...interface{}) error {
	return &macError{kind: kind, msg: fmt.Sprintf(format, a...), inner: inner}
}
