package editor

import (
	"fmt"

	"github.com/InAnYan/EditorAttempt1/internal/terminal"
)

// ProcessKey applies one key press. It returns false once the editor should
// exit. Errors come from saving and are fatal.
func (e *Editor) ProcessKey(k terminal.Key) (bool, error) {
	if k.IsCtrl('q') {
		return !e.confirmQuit(), nil
	}
	e.quitLeft = e.quitTimes

	switch {
	case k.IsCtrl('s'):
		return true, e.Save()
	case k.IsCtrl('m'), k.IsCtrl('j'):
		e.insertNewLine()
	case k.IsCtrl('i'):
		e.insertChar('\t')
	case k.IsCtrl('h'), k.Code == terminal.KeyBackspace && !k.Ctrl && !k.Alt:
		e.deleteChar()
	case k.Ctrl || k.Alt:
		e.unbound(k)
	default:
		e.dispatchPlain(k)
	}
	return true, nil
}

func (e *Editor) dispatchPlain(k terminal.Key) {
	switch k.Code {
	case terminal.KeyEscape:
	case terminal.KeyArrowLeft:
		e.moveLeft()
	case terminal.KeyArrowRight:
		e.moveRight()
	case terminal.KeyArrowUp:
		e.moveUp()
	case terminal.KeyArrowDown:
		e.moveDown()
	case terminal.KeyPageUp:
		for range e.textSize.Row {
			e.moveUp()
		}
	case terminal.KeyPageDown:
		for range e.textSize.Row {
			e.moveDown()
		}
	case terminal.KeyHome:
		e.cursor.Column = 0
	case terminal.KeyEnd:
		e.cursor.Column = e.buf.RowLen(e.cursor.Row)
	case terminal.KeyDelete:
		e.moveRight()
		e.deleteChar()
	default:
		// Bytes are stored as read, so UTF-8 sequences pass through.
		if k.Code >= 0x20 && k.Code <= 0xff {
			e.insertChar(byte(k.Code))
			return
		}
		e.unbound(k)
	}
}

// confirmQuit reports whether the editor may exit. With unsaved changes it
// takes quitTimes presses in a row.
func (e *Editor) confirmQuit() bool {
	if !e.dirty {
		return true
	}
	e.quitLeft--
	if e.quitLeft <= 0 {
		return true
	}
	e.SetMessage(fmt.Sprintf("WARNING: file has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitLeft))
	return false
}

func (e *Editor) unbound(k terminal.Key) {
	e.SetMessage("Unbound key press: " + k.String())
	e.log.Debug("unbound key", "key", k.String())
}

// ── Editing ──

func (e *Editor) insertChar(ch byte) {
	e.buf.InsertChar(e.cursor.Row, e.cursor.Column, ch)
	e.cursor.Column++
	e.dirty = true
}

func (e *Editor) insertNewLine() {
	e.buf.InsertNewLine(e.cursor.Row, e.cursor.Column)
	e.cursor.Row++
	e.cursor.Column = 0
	e.dirty = true
}

func (e *Editor) deleteChar() {
	row, col := e.cursor.Row, e.cursor.Column
	var prevLen int
	if col == 0 && row > 0 {
		prevLen = e.buf.RowLen(row - 1)
	}
	if !e.buf.DeleteChar(row, col) {
		return
	}

	if col > 0 {
		e.cursor.Column--
	} else {
		e.cursor.Row--
		e.cursor.Column = prevLen
	}
	e.dirty = true
}

// ── Navigation ──

func (e *Editor) moveLeft() {
	switch {
	case e.cursor.Column > 0:
		e.cursor.Column--
	case e.cursor.Row > 0:
		e.cursor.Row--
		e.cursor.Column = e.buf.RowLen(e.cursor.Row)
	}
}

func (e *Editor) moveRight() {
	switch {
	case e.cursor.Column < e.buf.RowLen(e.cursor.Row):
		e.cursor.Column++
	case e.cursor.Row < e.buf.Len():
		e.cursor.Row++
		e.cursor.Column = 0
	}
}

func (e *Editor) moveUp() {
	e.SetCursor(terminal.Coord{Column: e.cursor.Column, Row: e.cursor.Row - 1})
}

func (e *Editor) moveDown() {
	e.SetCursor(terminal.Coord{Column: e.cursor.Column, Row: e.cursor.Row + 1})
}
