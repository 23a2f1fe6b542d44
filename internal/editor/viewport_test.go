package editor

import (
	"testing"

	"github.com/InAnYan/EditorAttempt1/internal/terminal"
)

func TestComputeRenderColumn(t *testing.T) {
	b := NewBufferFromLines([]string{"a\tb", "\t\tx", "plain"}, 4)
	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 2, 4},
		{0, 3, 5},
		{1, 1, 4},
		{1, 2, 8},
		{2, 3, 3},
		{2, 99, 5}, // clamped
		{3, 0, 0},  // virtual row
	}
	for _, tt := range tests {
		got := ComputeRenderColumn(b.Row(tt.row), tt.col, b.TabStop())
		if got != tt.want {
			t.Errorf("row %d col %d: expected %d, got %d", tt.row, tt.col, tt.want, got)
		}
	}
}

func TestComputeRenderColumnMatchesRender(t *testing.T) {
	b := NewBufferFromLines([]string{"ab\tc\t\td"}, 3)
	r := b.Row(0)
	if got := ComputeRenderColumn(r, r.Len(), b.TabStop()); got != r.RenderLen() {
		t.Errorf("expected render column at end %d, got %d", r.RenderLen(), got)
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "0123456789\t0123456789abcdefghij"
	}
	b := NewBufferFromLines(lines, 4)
	sizes := []terminal.Coord{{Column: 1, Row: 1}, {Column: 7, Row: 3}, {Column: 80, Row: 24}}

	for _, size := range sizes {
		var v Viewport
		// Walk the cursor down and right, then back to the origin.
		var cursors []terminal.Coord
		for row := 0; row <= b.Len(); row += 3 {
			cursors = append(cursors, terminal.Coord{Column: row % 31, Row: row})
		}
		cursors = append(cursors, terminal.Coord{Column: 0, Row: 0}, terminal.Coord{Column: 30, Row: 10})

		for _, c := range cursors {
			rx := v.Scroll(b, c, size)
			if c.Row < v.Offset.Row || c.Row >= v.Offset.Row+size.Row {
				t.Errorf("size %v cursor %v: row offset %d out of range", size, c, v.Offset.Row)
			}
			if rx < v.Offset.Column || rx >= v.Offset.Column+size.Column {
				t.Errorf("size %v cursor %v: rx %d outside columns [%d, %d)", size, c, rx, v.Offset.Column, v.Offset.Column+size.Column)
			}
		}
	}
}

func TestScrollIsMinimal(t *testing.T) {
	b := NewBufferFromLines(make([]string, 20), 4)
	v := Viewport{Offset: terminal.Coord{Row: 5}}
	size := terminal.Coord{Column: 10, Row: 5}

	v.Scroll(b, terminal.Coord{Row: 7}, size)
	if v.Offset.Row != 5 {
		t.Errorf("cursor already visible: expected offset 5, got %d", v.Offset.Row)
	}

	v.Scroll(b, terminal.Coord{Row: 10}, size)
	if v.Offset.Row != 6 {
		t.Errorf("one row below: expected offset 6, got %d", v.Offset.Row)
	}

	v.Scroll(b, terminal.Coord{Row: 2}, size)
	if v.Offset.Row != 2 {
		t.Errorf("above: expected offset 2, got %d", v.Offset.Row)
	}
}

func TestScrollZeroSize(t *testing.T) {
	b := NewBufferFromLines([]string{"abc", "def"}, 4)
	var v Viewport
	rx := v.Scroll(b, terminal.Coord{Column: 2, Row: 1}, terminal.Coord{})
	if v.Offset != (terminal.Coord{Column: 2, Row: 1}) {
		t.Errorf("expected offset at cursor, got %v", v.Offset)
	}
	if rx != 2 {
		t.Errorf("expected rx 2, got %d", rx)
	}
}

func TestScrollUsesRenderColumn(t *testing.T) {
	b := NewBufferFromLines([]string{"\t\t\tx"}, 8)
	var v Viewport
	rx := v.Scroll(b, terminal.Coord{Column: 3, Row: 0}, terminal.Coord{Column: 10, Row: 5})
	if rx != 24 {
		t.Fatalf("expected rx 24, got %d", rx)
	}
	if v.Offset.Column != 15 {
		t.Errorf("expected column offset 15, got %d", v.Offset.Column)
	}
}
