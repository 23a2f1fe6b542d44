//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"

	cerr "github.com/InAnYan/EditorAttempt1/internal/errors"
)

// NewStd reports that no terminal driver exists for this platform.
func NewStd() (Driver, error) {
	return nil, cerr.Implementation("open the terminal", errors.New("unsupported platform"))
}
