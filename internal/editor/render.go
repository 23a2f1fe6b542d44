package editor

import (
	"fmt"
	"strings"

	"github.com/InAnYan/EditorAttempt1/internal/terminal"
)

// Rows below the text area: the status bar and the message bar.
const chromeRows = 2

// Frame is everything the renderer needs to draw one screen.
type Frame struct {
	Buffer  *Buffer
	Size    terminal.Coord // whole terminal
	Offset  terminal.Coord
	Cursor  terminal.Coord
	Rx      int
	Name    string
	Dirty   bool
	Message string
}

// Renderer turns a Frame into drawing calls on a terminal.Driver.
type Renderer struct {
	Foreground terminal.Color
	Background terminal.Color
	Welcome    string // shown on an empty buffer
}

// chrome returns the rows given to the bars. A terminal too short to keep a
// text row beside them shows text only.
func chrome(size terminal.Coord) int {
	if size.Row <= chromeRows {
		return 0
	}
	return chromeRows
}

// textArea returns the size of the region rows of text are drawn in.
func textArea(size terminal.Coord) terminal.Coord {
	return terminal.Coord{
		Column: max(size.Column, 1),
		Row:    max(size.Row-chrome(size), 1),
	}
}

// Draw emits one full frame. The caller flushes.
func (r *Renderer) Draw(d terminal.Driver, f Frame) {
	d.SetForegroundColor(r.Foreground)
	d.SetBackgroundColor(r.Background)
	d.HideCursor()
	d.SetCursorPosition(terminal.Coord{})

	r.drawRows(d, f)
	if chrome(f.Size) > 0 {
		r.drawStatusBar(d, f)
		r.drawMessageBar(d, f)
	}

	d.SetCursorPosition(terminal.Coord{
		Column: f.Rx - f.Offset.Column,
		Row:    f.Cursor.Row - f.Offset.Row,
	})
	d.ShowCursor()
	d.RevertAllAttributes()
}

func (r *Renderer) drawRows(d terminal.Driver, f Frame) {
	area := textArea(f.Size)
	bars := chrome(f.Size) > 0
	for y := 0; y < area.Row; y++ {
		row := f.Buffer.Row(y + f.Offset.Row)
		if row == nil {
			r.drawDefaultRow(d, f, y)
		} else {
			d.WriteSubstring(row.Render(), f.Offset.Column, area.Column)
		}
		d.ClearCurrentRow()
		// A newline after the bottom row would scroll the screen.
		if bars || y < area.Row-1 {
			d.WriteString("\r\n")
		}
	}
}

// drawDefaultRow draws a row past the end of the buffer: a tilde, or the
// centered welcome line a third of the way down an empty buffer.
func (r *Renderer) drawDefaultRow(d terminal.Driver, f Frame, y int) {
	area := textArea(f.Size)
	if f.Buffer.Len() != 0 || y != area.Row/3 || area.Column <= len(r.Welcome) {
		d.WriteString("~")
		return
	}

	padding := (area.Column - len(r.Welcome)) / 2
	if padding > 0 {
		d.WriteString("~")
		padding--
	}
	d.WriteString(strings.Repeat(" ", padding))
	d.WriteString(r.Welcome)
}

// statusLine formats " - name - NNN% - L<row> - C<col> -".
func statusLine(f Frame) string {
	s := fmt.Sprintf(" - %s - %3d%% - L%d - C%d -",
		f.Name, percentThrough(f.Cursor.Row, f.Buffer.Len()), f.Cursor.Row+1, f.Cursor.Column+1)
	if f.Dirty {
		s += " (modified)"
	}
	return s
}

// percentThrough reports how far row is through a buffer of n rows. The
// virtual row past the end counts as 100%.
func percentThrough(row, n int) int {
	if n == 0 {
		return 0
	}
	return min((row+1)*100/n, 100)
}

func (r *Renderer) drawStatusBar(d terminal.Driver, f Frame) {
	width := textArea(f.Size).Column

	d.SetBackgroundColor(r.Background.Inverted())
	d.SetForegroundColor(r.Foreground.Inverted())

	s := statusLine(f)
	if len(s) <= width {
		var sb strings.Builder
		sb.WriteString(s)
		for i := len(s); i < width; i++ {
			if i == width-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('-')
			}
		}
		d.WriteString(sb.String())
	} else {
		d.WriteString(strings.Repeat(" ", width))
	}

	d.SetBackgroundColor(r.Background)
	d.SetForegroundColor(r.Foreground)
	d.WriteString("\r\n")
}

func (r *Renderer) drawMessageBar(d terminal.Driver, f Frame) {
	width := textArea(f.Size).Column
	msg := f.Message

	if len(msg) >= width {
		const ellipsis = "..."
		keep := width - 1 - len(ellipsis)
		if keep < 0 {
			d.WriteSubstring(ellipsis, 0, width)
			return
		}
		d.WriteSubstring(msg, 0, keep)
		d.WriteString(ellipsis)
		return
	}

	d.WriteString(msg)
	d.ClearCurrentRow()
}
