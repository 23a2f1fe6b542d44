package errors

import (
	stderrors "errors"
	"strings"
)

// Kind classifies an unrecoverable editor failure.
type Kind int

const (
	KindImplementation Kind = iota // terminal query or write failed
	KindFileIO                     // open, read or write of the edited file failed
)

func (k Kind) String() string {
	switch k {
	case KindImplementation:
		return "implementation error"
	case KindFileIO:
		return "file I/O error"
	}
	return "unknown error"
}

// Process exit statuses.
const (
	StatusOK    = 0
	StatusFatal = 1
	StatusUsage = 2
)

// EditorError is a failure that ends the editing session.
type EditorError struct {
	Kind Kind
	Op   string // what was being attempted, e.g. "get the size of the terminal"
	Path string // file path for KindFileIO (empty otherwise)
	Err  error  // underlying cause (optional)
}

// Error implements the error interface.
func (e *EditorError) Error() string { return e.Format() }

// Unwrap returns the underlying cause.
func (e *EditorError) Unwrap() error { return e.Err }

// Format returns a single-line representation suitable for stderr
// (without ANSI; the caller wraps it with cli colors).
func (e *EditorError) Format() string {
	var b strings.Builder

	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}

	b.WriteString("unable to ")
	b.WriteString(e.Op)

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Implementation returns a terminal driver failure. cause reads as the
// continuation of "unable to ...".
func Implementation(cause string, err error) *EditorError {
	return &EditorError{Kind: KindImplementation, Op: cause, Err: err}
}

// FileIO returns a failure while accessing the edited file.
func FileIO(op, path string, err error) *EditorError {
	return &EditorError{Kind: KindFileIO, Op: op, Path: path, Err: err}
}

// KindOf reports the Kind of the first EditorError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ee *EditorError
	if stderrors.As(err, &ee) {
		return ee.Kind, true
	}
	return 0, false
}

// IsImplementation reports whether err carries a terminal driver failure.
func IsImplementation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindImplementation
}

// ExitStatus maps an error returned by the editor to a process exit status.
func ExitStatus(err error) int {
	if err == nil {
		return StatusOK
	}
	return StatusFatal
}
