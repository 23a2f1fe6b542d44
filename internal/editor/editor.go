// Package editor implements the text-editing state machine: a line buffer,
// a cursor and viewport over it, key dispatch, and screen rendering through
// a terminal.Driver.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/InAnYan/EditorAttempt1/internal/terminal"
	"github.com/InAnYan/EditorAttempt1/internal/version"
)

// Options configures an Editor.
type Options struct {
	TabStop         int
	QuitTimes       int // quit presses needed to leave with unsaved changes
	MessageLifetime int // frames a message stays on the message bar
	Foreground      terminal.Color
	Background      terminal.Color
	Logger          *slog.Logger
}

// DefaultOptions returns the options used when no settings file exists.
func DefaultOptions() Options {
	return Options{
		TabStop:         DefaultTabStop,
		QuitTimes:       3,
		MessageLifetime: 1,
		Foreground:      terminal.Color{R: 0xff, G: 0xff, B: 0xff},
		Background:      terminal.Color{},
	}
}

type message struct {
	text string
	ttl  int // frames left
}

// Editor owns the buffer and all cursor, viewport and message state.
type Editor struct {
	path string
	name string // display name (basename)
	buf  *Buffer

	cursor   terminal.Coord // column is a stored byte index
	view     Viewport
	rx       int            // render column of the cursor
	textSize terminal.Coord // last known text area

	dirty     bool
	quitTimes int
	quitLeft  int

	msg         message
	msgLifetime int

	renderer Renderer
	log      *slog.Logger
}

// New returns an editor over buf that saves to path.
func New(path string, buf *Buffer, opts Options) *Editor {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Editor{
		path:        path,
		name:        filepath.Base(path),
		buf:         buf,
		textSize:    terminal.Coord{Column: 1, Row: 1},
		quitTimes:   opts.QuitTimes,
		quitLeft:    opts.QuitTimes,
		msgLifetime: opts.MessageLifetime,
		renderer: Renderer{
			Foreground: opts.Foreground,
			Background: opts.Background,
			Welcome:    version.Welcome(),
		},
		log: log,
	}
}

// Open loads path into a new editor. A file that does not exist yet starts
// an empty buffer with a "New file" message; an existing one is greeted.
func Open(path string, opts Options) (*Editor, error) {
	lines, err := loadLines(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	e := New(path, NewBufferFromLines(lines, opts.TabStop), opts)
	if err != nil {
		e.SetMessage("New file")
	} else {
		e.SetMessage("Welcome to the editor!")
	}
	e.log.Info("opened file", "path", path, "lines", e.buf.Len())
	return e, nil
}

// Buffer returns the buffer being edited.
func (e *Editor) Buffer() *Buffer { return e.buf }

// Cursor returns the cursor in buffer coordinates.
func (e *Editor) Cursor() terminal.Coord { return e.cursor }

// Offset returns the buffer coordinate drawn at the top-left text cell.
func (e *Editor) Offset() terminal.Coord { return e.view.Offset }

// Dirty reports whether the buffer has unsaved changes.
func (e *Editor) Dirty() bool { return e.dirty }

// Message returns the text currently on the message bar.
func (e *Editor) Message() string { return e.msg.text }

// SetMessage shows text on the message bar for the configured lifetime.
func (e *Editor) SetMessage(text string) {
	e.msg = message{text: text, ttl: e.msgLifetime}
}

// SetCursor moves the cursor, clamping it to the buffer.
func (e *Editor) SetCursor(c terminal.Coord) {
	e.cursor.Row = clamp(c.Row, 0, e.buf.Len())
	e.cursor.Column = clamp(c.Column, 0, e.buf.RowLen(e.cursor.Row))
}

// Run draws and dispatches keys until the user quits or an error occurs.
func Run(d terminal.Driver, e *Editor) error {
	for {
		if err := e.RefreshScreen(d); err != nil {
			return err
		}
		k, err := d.WaitAndReadKey()
		if err != nil {
			return err
		}
		alive, err := e.ProcessKey(k)
		if err != nil {
			return err
		}
		if !alive {
			return nil
		}
	}
}

// RefreshScreen scrolls the viewport to the cursor, draws a frame and
// flushes it. Each drawn frame uses up one frame of the message lifetime.
func (e *Editor) RefreshScreen(d terminal.Driver) error {
	size, err := d.GetSize()
	if err != nil {
		return err
	}
	e.textSize = textArea(size)
	e.rx = e.view.Scroll(e.buf, e.cursor, e.textSize)

	e.renderer.Draw(d, Frame{
		Buffer:  e.buf,
		Size:    size,
		Offset:  e.view.Offset,
		Cursor:  e.cursor,
		Rx:      e.rx,
		Name:    e.name,
		Dirty:   e.dirty,
		Message: e.msg.text,
	})
	if err := d.Flush(); err != nil {
		return err
	}

	e.tickMessage()
	return nil
}

func (e *Editor) tickMessage() {
	if e.msg.text == "" {
		return
	}
	e.msg.ttl--
	if e.msg.ttl <= 0 {
		e.msg = message{}
	}
}

// Save writes the buffer to its file and clears the dirty flag.
func (e *Editor) Save() error {
	lines := e.buf.Lines()
	if err := saveLines(e.path, lines); err != nil {
		return err
	}
	e.dirty = false
	e.SetMessage(fmt.Sprintf("%d lines written to %s", len(lines), e.path))
	e.log.Info("saved file", "path", e.path, "lines", len(lines))
	return nil
}
