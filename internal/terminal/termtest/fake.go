// Package termtest provides a scripted terminal.Driver for tests.
package termtest

import (
	"fmt"
	"io"
	"strings"

	cerr "github.com/InAnYan/EditorAttempt1/internal/errors"
	"github.com/InAnYan/EditorAttempt1/internal/terminal"
)

// Call is one recorded drawing call.
type Call struct {
	Op   string // "clear", "clearRow", "move", "hide", "show", "write", "fg", "bg", "reset"
	Text string // written text for "write"
	At   terminal.Coord
	Col  terminal.Color
}

// Fake records drawing calls and replays scripted keys.
// Calls accumulate until Flush moves them to Frames.
type Fake struct {
	Size        terminal.Coord
	Keys        []terminal.Key
	Features    map[terminal.Feature]bool
	ReadTimeout int

	Pending []Call
	Frames  [][]Call

	// Injected failures.
	SizeErr    error
	FlushErr   error
	FeatureErr error

	Toggles int // successful feature changes
}

// New returns a fake of the given size with every feature enabled, as a
// freshly opened terminal.
func New(cols, rows int, keys ...terminal.Key) *Fake {
	f := &Fake{
		Size:     terminal.Coord{Column: cols, Row: rows},
		Keys:     keys,
		Features: make(map[terminal.Feature]bool),
	}
	for _, feat := range terminal.RawModeFeatures {
		f.Features[feat] = true
	}
	return f
}

func (f *Fake) GetSize() (terminal.Coord, error) {
	if f.SizeErr != nil {
		return terminal.Coord{}, f.SizeErr
	}
	return f.Size, nil
}

func (f *Fake) EnableFeature(feat terminal.Feature) error  { return f.set(feat, true) }
func (f *Fake) DisableFeature(feat terminal.Feature) error { return f.set(feat, false) }

func (f *Fake) set(feat terminal.Feature, on bool) error {
	if f.FeatureErr != nil {
		return f.FeatureErr
	}
	if f.Features[feat] == on {
		return nil
	}
	f.Features[feat] = on
	f.Toggles++
	return nil
}

func (f *Fake) SetReadTimeout(ms int) error {
	f.ReadTimeout = ms
	return nil
}

// WaitAndReadKey pops the next scripted key. Running out of keys is an
// implementation error, so a test that forgets to quit ends instead of
// hanging.
func (f *Fake) WaitAndReadKey() (terminal.Key, error) {
	if len(f.Keys) == 0 {
		return terminal.Key{}, cerr.Implementation("read a character from the terminal", io.EOF)
	}
	k := f.Keys[0]
	f.Keys = f.Keys[1:]
	return k, nil
}

func (f *Fake) ClearScreen()     { f.record(Call{Op: "clear"}) }
func (f *Fake) ClearCurrentRow() { f.record(Call{Op: "clearRow"}) }
func (f *Fake) HideCursor()      { f.record(Call{Op: "hide"}) }
func (f *Fake) ShowCursor()      { f.record(Call{Op: "show"}) }

func (f *Fake) SetCursorPosition(c terminal.Coord)  { f.record(Call{Op: "move", At: c}) }
func (f *Fake) WriteCharacter(ch byte)              { f.record(Call{Op: "write", Text: string([]byte{ch})}) }
func (f *Fake) WriteString(s string)                { f.record(Call{Op: "write", Text: s}) }
func (f *Fake) SetForegroundColor(c terminal.Color) { f.record(Call{Op: "fg", Col: c}) }
func (f *Fake) SetBackgroundColor(c terminal.Color) { f.record(Call{Op: "bg", Col: c}) }
func (f *Fake) RevertAllAttributes()                { f.record(Call{Op: "reset"}) }

func (f *Fake) WriteSubstring(s string, start, length int) {
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		start = len(s)
	}
	end := start + length
	if length < 0 || end > len(s) {
		end = len(s)
	}
	f.WriteString(s[start:end])
}

func (f *Fake) record(c Call) { f.Pending = append(f.Pending, c) }

// Flush moves the pending calls into a new frame. With FlushErr set the
// pending calls are dropped and the error returned.
func (f *Fake) Flush() error {
	pending := f.Pending
	f.Pending = nil
	if f.FlushErr != nil {
		return f.FlushErr
	}
	f.Frames = append(f.Frames, pending)
	return nil
}

// LastFrame returns the most recently flushed frame.
func (f *Fake) LastFrame() []Call {
	if len(f.Frames) == 0 {
		return nil
	}
	return f.Frames[len(f.Frames)-1]
}

// Lines replays a frame's writes onto a grid and returns the visible text
// of each screen row. Writes of "\r\n" advance to the next row, and a move
// call repositions the pen.
func Lines(frame []Call, size terminal.Coord) []string {
	grid := make([][]byte, size.Row)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", size.Column))
	}

	var pen terminal.Coord
	for _, c := range frame {
		switch c.Op {
		case "clear":
			for i := range grid {
				grid[i] = []byte(strings.Repeat(" ", size.Column))
			}
		case "move":
			pen = c.At
		case "clearRow":
			if pen.Row >= 0 && pen.Row < size.Row {
				for x := max(pen.Column, 0); x < size.Column; x++ {
					grid[pen.Row][x] = ' '
				}
			}
		case "write":
			for i := 0; i < len(c.Text); i++ {
				ch := c.Text[i]
				switch ch {
				case '\r':
					pen.Column = 0
				case '\n':
					pen.Row++
				default:
					if pen.Row >= 0 && pen.Row < size.Row && pen.Column >= 0 && pen.Column < size.Column {
						grid[pen.Row][pen.Column] = ch
					}
					pen.Column++
				}
			}
		}
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

// Cursor returns the last cursor position set in a frame.
func Cursor(frame []Call) (terminal.Coord, error) {
	for i := len(frame) - 1; i >= 0; i-- {
		if frame[i].Op == "move" {
			return frame[i].At, nil
		}
	}
	return terminal.Coord{}, fmt.Errorf("frame has no cursor move")
}
