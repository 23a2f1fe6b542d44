package editor

import "github.com/InAnYan/EditorAttempt1/internal/terminal"

// ComputeRenderColumn converts a stored column of row into its displayed
// column, expanding tabs exactly as the row's render does. A nil row (the
// virtual row) yields 0.
func ComputeRenderColumn(row *Row, column, tabStop int) int {
	if row == nil {
		return 0
	}
	column = clamp(column, 0, row.Len())

	rx := 0
	for _, c := range row.real[:column] {
		if c == '\t' {
			rx += tabStop - rx%tabStop
		} else {
			rx++
		}
	}
	return rx
}

// Viewport tracks which part of the buffer is visible. Offset is the
// buffer coordinate (render column, row) drawn at the top-left text cell.
type Viewport struct {
	Offset terminal.Coord
}

// Scroll moves Offset by the least amount that keeps the cursor inside a
// window of the given size, and returns the cursor's render column.
func (v *Viewport) Scroll(buf *Buffer, cursor, size terminal.Coord) int {
	height := max(size.Row, 1)
	width := max(size.Column, 1)

	rx := ComputeRenderColumn(buf.Row(cursor.Row), cursor.Column, buf.TabStop())

	// Vertical.
	if cursor.Row < v.Offset.Row {
		v.Offset.Row = cursor.Row
	}
	if cursor.Row >= v.Offset.Row+height {
		v.Offset.Row = cursor.Row - height + 1
	}

	// Horizontal.
	if rx < v.Offset.Column {
		v.Offset.Column = rx
	}
	if rx >= v.Offset.Column+width {
		v.Offset.Column = rx - width + 1
	}

	return rx
}
