//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	cerr "github.com/InAnYan/EditorAttempt1/internal/errors"
)

var _ Driver = (*Unix)(nil)

// Unix drives a POSIX terminal through termios.
type Unix struct {
	inFd  int
	outFd int
	out   screenBuffer
}

// NewStd returns a driver over the process's standard input and output.
func NewStd() (Driver, error) {
	return NewUnix(os.Stdin, os.Stdout)
}

// NewUnix returns a driver reading keys from in and drawing to out.
// in must be a terminal.
func NewUnix(in, out *os.File) (*Unix, error) {
	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, cerr.Implementation("use standard input as a terminal", fmt.Errorf("%s is not a terminal", in.Name()))
	}
	return &Unix{inFd: inFd, outFd: int(out.Fd())}, nil
}

// ── Line discipline ──

// EnableFeature turns f on. It does nothing if f is already on.
func (u *Unix) EnableFeature(f Feature) error { return u.setFeature(f, true) }

// DisableFeature turns f off. It does nothing if f is already off.
func (u *Unix) DisableFeature(f Feature) error { return u.setFeature(f, false) }

func (u *Unix) setFeature(f Feature, on bool) error {
	t, err := u.getState()
	if err != nil {
		return err
	}
	changed, err := applyFeature(t, f, on)
	if err != nil {
		return cerr.Implementation("change the state of the terminal", err)
	}
	if !changed {
		return nil
	}
	return u.setState(t)
}

// SetReadTimeout sets the read timer; the terminal counts in tenths of a
// second, so ms is rounded to the nearest 100.
func (u *Unix) SetReadTimeout(ms int) error {
	t, err := u.getState()
	if err != nil {
		return err
	}
	setReadTimeout(t, deciseconds(ms))
	return u.setState(t)
}

func (u *Unix) getState() (*unix.Termios, error) {
	t, err := unix.IoctlGetTermios(u.inFd, ioctlReadTermios)
	if err != nil {
		return nil, cerr.Implementation("get the state of the terminal", err)
	}
	return t, nil
}

func (u *Unix) setState(t *unix.Termios) error {
	if err := unix.IoctlSetTermios(u.inFd, ioctlWriteTermios, t); err != nil {
		return cerr.Implementation("change the state of the terminal", err)
	}
	return nil
}

// ── Input ──

// WaitAndReadKey blocks until a key press is decoded. Read timeouts only
// bound the escape-sequence lookahead; the first byte is waited for.
func (u *Unix) WaitAndReadKey() (Key, error) {
	return decodeKey(u)
}

func (u *Unix) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(u.inFd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, cerr.Implementation("read a character from the terminal", err)
	}
	if n != 1 {
		if u.hungUp() {
			return 0, false, cerr.Implementation("read a character from the terminal", io.EOF)
		}
		return 0, false, nil
	}
	return buf[0], true, nil
}

// hungUp tells a read timeout apart from a closed terminal, which also
// returns no bytes but does so immediately and forever.
func (u *Unix) hungUp() bool {
	fds := []unix.PollFd{{Fd: int32(u.inFd), Events: unix.POLLIN}}
	if _, err := unix.Poll(fds, 0); err != nil {
		return false
	}
	return isHangup(fds[0].Revents)
}

// ── Size ──

// GetSize returns the window size in columns and rows. When the window
// size ioctl is unavailable the cursor is pushed to the bottom-right corner
// and its reported position is used instead.
func (u *Unix) GetSize() (Coord, error) {
	cols, rows, err := term.GetSize(u.outFd)
	if err == nil && cols > 0 {
		return Coord{Column: cols, Row: rows}, nil
	}
	return u.sizeFallback()
}

func (u *Unix) sizeFallback() (Coord, error) {
	if err := u.write([]byte(escCursorFar)); err != nil {
		return Coord{}, cerr.Implementation("get the size of the terminal", err)
	}
	return u.cursorPosition()
}

func (u *Unix) cursorPosition() (Coord, error) {
	if err := u.write([]byte(escQueryPosition)); err != nil {
		return Coord{}, cerr.Implementation("get the size of the terminal", err)
	}

	var reply []byte
	for len(reply) < 31 {
		b, ok, err := u.readByte()
		if err != nil || !ok || b == 'R' {
			break
		}
		reply = append(reply, b)
	}
	return parseCursorReport(reply)
}

// ── Output ──

func (u *Unix) ClearScreen()               { u.out.clearScreen() }
func (u *Unix) ClearCurrentRow()           { u.out.clearCurrentRow() }
func (u *Unix) SetCursorPosition(c Coord)  { u.out.moveTo(c) }
func (u *Unix) HideCursor()                { u.out.hideCursor() }
func (u *Unix) ShowCursor()                { u.out.showCursor() }
func (u *Unix) WriteCharacter(ch byte)     { u.out.WriteByte(ch) }
func (u *Unix) WriteString(s string)       { u.out.WriteString(s) }
func (u *Unix) SetForegroundColor(c Color) { u.out.foreground(c) }
func (u *Unix) SetBackgroundColor(c Color) { u.out.background(c) }
func (u *Unix) RevertAllAttributes()       { u.out.revertAll() }

// WriteSubstring writes s[start:start+length], clamped to s.
func (u *Unix) WriteSubstring(s string, start, length int) {
	u.out.substring(s, start, length)
}

// Flush writes the buffered frame in a single write. The buffer is emptied
// even when the write fails.
func (u *Unix) Flush() error {
	defer u.out.Reset()
	if u.out.Len() == 0 {
		return nil
	}
	if err := u.write(u.out.Bytes()); err != nil {
		return cerr.Implementation("write to the terminal", err)
	}
	return nil
}

func (u *Unix) write(p []byte) error {
	n, err := unix.Write(u.outFd, p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}
