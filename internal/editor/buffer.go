package editor

import "fmt"

// DefaultTabStop is the render width a tab is expanded to.
const DefaultTabStop = 4

// Row is one line of text. real holds the bytes as stored; render holds
// them as displayed, with tabs expanded. Every mutating method rebuilds
// render, so it never goes stale.
type Row struct {
	real   []byte
	render []byte
}

// Len returns the number of stored bytes.
func (r *Row) Len() int { return len(r.real) }

// Real returns the stored text.
func (r *Row) Real() string { return string(r.real) }

// Render returns the displayed text.
func (r *Row) Render() string { return string(r.render) }

// RenderLen returns the displayed width.
func (r *Row) RenderLen() int { return len(r.render) }

func (r *Row) update(tabStop int) {
	r.render = expandTabs(r.real, tabStop)
}

func (r *Row) insert(at int, ch byte, tabStop int) {
	at = clamp(at, 0, len(r.real))
	r.real = append(r.real, 0)
	copy(r.real[at+1:], r.real[at:])
	r.real[at] = ch
	r.update(tabStop)
}

func (r *Row) remove(at int, tabStop int) {
	if at < 0 || at >= len(r.real) {
		return
	}
	r.real = append(r.real[:at], r.real[at+1:]...)
	r.update(tabStop)
}

func (r *Row) appendBytes(p []byte, tabStop int) {
	r.real = append(r.real, p...)
	r.update(tabStop)
}

// truncate cuts the row at col and returns the removed tail.
func (r *Row) truncate(col int, tabStop int) []byte {
	col = clamp(col, 0, len(r.real))
	tail := make([]byte, len(r.real)-col)
	copy(tail, r.real[col:])
	r.real = r.real[:col]
	r.update(tabStop)
	return tail
}

// expandTabs replaces each tab with spaces up to the next multiple of
// tabStop (at least one space).
func expandTabs(real []byte, tabStop int) []byte {
	out := make([]byte, 0, len(real))
	for _, c := range real {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%tabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// Buffer is the ordered list of rows being edited. Row index Len() is the
// virtual row just past the last line, where the cursor may rest.
type Buffer struct {
	rows    []*Row
	tabStop int
}

// NewBuffer returns an empty buffer. A non-positive tabStop falls back to
// DefaultTabStop.
func NewBuffer(tabStop int) *Buffer {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return &Buffer{tabStop: tabStop}
}

// NewBufferFromLines returns a buffer with one row per line.
func NewBufferFromLines(lines []string, tabStop int) *Buffer {
	b := NewBuffer(tabStop)
	for _, l := range lines {
		b.AppendRow(l)
	}
	return b
}

// Len returns the number of rows.
func (b *Buffer) Len() int { return len(b.rows) }

// Row returns row i, or nil for the virtual row and out-of-range indexes.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// RowLen returns the stored length of row i; 0 for the virtual row.
func (b *Buffer) RowLen(i int) int {
	if r := b.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

// Lines returns the stored text of every row.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = r.Real()
	}
	return out
}

// TabStop returns the current tab stop.
func (b *Buffer) TabStop() int { return b.tabStop }

// SetTabStop changes the tab stop and re-renders every row.
func (b *Buffer) SetTabStop(n int) error {
	if n <= 0 {
		return fmt.Errorf("tab stop must be greater than 0, got %d", n)
	}
	b.tabStop = n
	for i := range b.rows {
		b.UpdateRender(i)
	}
	return nil
}

// UpdateRender rebuilds the rendered text of row i.
func (b *Buffer) UpdateRender(i int) {
	if r := b.Row(i); r != nil {
		r.update(b.tabStop)
	}
}

// ── Row operations ──

// AppendRow adds a row holding text after the last row.
func (b *Buffer) AppendRow(text string) {
	b.InsertRow(len(b.rows), text)
}

// InsertRow inserts a row holding text before index at (clamped).
func (b *Buffer) InsertRow(at int, text string) {
	at = clamp(at, 0, len(b.rows))
	r := &Row{real: []byte(text)}
	r.update(b.tabStop)

	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = r
}

func (b *Buffer) removeRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
}

// ── Editing ──

// InsertChar inserts ch into row at col (clamped to the row). On the
// virtual row a new empty row is appended first.
func (b *Buffer) InsertChar(row, col int, ch byte) {
	if row < 0 || row > len(b.rows) {
		return
	}
	if row == len(b.rows) {
		b.AppendRow("")
	}
	b.rows[row].insert(col, ch, b.tabStop)
}

// DeleteChar deletes the character before col. At column 0 the row is
// joined onto the end of the previous row. Returns false when nothing
// changed: at the very start of the buffer or on the virtual row.
func (b *Buffer) DeleteChar(row, col int) bool {
	if row < 0 || row >= len(b.rows) {
		return false
	}
	r := b.rows[row]
	col = clamp(col, 0, r.Len())

	if col > 0 {
		r.remove(col-1, b.tabStop)
		return true
	}
	if row == 0 {
		return false
	}

	b.rows[row-1].appendBytes(r.real, b.tabStop)
	b.removeRow(row)
	return true
}

// InsertNewLine splits row at col; the tail becomes a new row after it.
// At column 0 an empty row is inserted before row instead.
func (b *Buffer) InsertNewLine(row, col int) {
	if row < 0 || row > len(b.rows) {
		return
	}
	if col <= 0 || row == len(b.rows) {
		b.InsertRow(row, "")
		return
	}

	tail := b.rows[row].truncate(col, b.tabStop)
	b.InsertRow(row+1, string(tail))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
