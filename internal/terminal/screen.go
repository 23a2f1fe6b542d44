package terminal

import (
	"bytes"
	"strconv"
)

// ANSI escape helpers.
const (
	escClearScreen   = "\033[2J"
	escClearLine     = "\033[K"
	escHideCursor    = "\033[?25l"
	escShowCursor    = "\033[?25h"
	escResetAttrs    = "\033[m"
	escCursorFar     = "\033[999C\033[999B"
	escQueryPosition = "\033[6n"
)

// screenBuffer accumulates the output of one frame.
type screenBuffer struct {
	bytes.Buffer
}

func (s *screenBuffer) clearScreen()     { s.WriteString(escClearScreen) }
func (s *screenBuffer) clearCurrentRow() { s.WriteString(escClearLine) }
func (s *screenBuffer) hideCursor()      { s.WriteString(escHideCursor) }
func (s *screenBuffer) showCursor()      { s.WriteString(escShowCursor) }
func (s *screenBuffer) revertAll()       { s.WriteString(escResetAttrs) }

// moveTo converts the zero-based coord to the one-based CSI H form.
func (s *screenBuffer) moveTo(c Coord) {
	s.WriteString("\033[")
	s.WriteString(strconv.Itoa(c.Row + 1))
	s.WriteByte(';')
	s.WriteString(strconv.Itoa(c.Column + 1))
	s.WriteByte('H')
}

func (s *screenBuffer) substring(str string, start, length int) {
	if start < 0 {
		start = 0
	}
	if start > len(str) {
		start = len(str)
	}
	end := start + length
	if length < 0 || end > len(str) {
		end = len(str)
	}
	s.WriteString(str[start:end])
}

func (s *screenBuffer) foreground(c Color) { s.color(38, c) }
func (s *screenBuffer) background(c Color) { s.color(48, c) }

func (s *screenBuffer) color(selector int, c Color) {
	s.WriteString("\033[")
	s.WriteString(strconv.Itoa(selector))
	s.WriteString(";2;")
	s.WriteString(strconv.Itoa(int(c.R)))
	s.WriteByte(';')
	s.WriteString(strconv.Itoa(int(c.G)))
	s.WriteByte(';')
	s.WriteString(strconv.Itoa(int(c.B)))
	s.WriteByte('m')
}
