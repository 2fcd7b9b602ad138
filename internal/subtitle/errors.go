package subtitle

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSeparator = errors.New("missing \" --> \" separator")
	ErrMissingMillis    = errors.New("missing milliseconds field")
	ErrFieldCount       = errors.New("expected HH:MM:SS")
	ErrInvalidField     = errors.New("not a non-negative integer")
	ErrMissingSpan      = errors.New("block has no timing line")
)

// FormatError reports SRT text that cannot be parsed. Line is 1-based and
// zero when the failing text was not read from a document.
type FormatError struct {
	Line    int
	Content string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %q: %v", e.Line, e.Content, e.Err)
	}
	return fmt.Sprintf("invalid %q: %v", e.Content, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IOError wraps a failure of the file collaborators.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
