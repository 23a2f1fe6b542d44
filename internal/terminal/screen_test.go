package terminal

import "testing"

func TestScreenBufferSequences(t *testing.T) {
	var s screenBuffer
	s.hideCursor()
	s.moveTo(Coord{Column: 0, Row: 0})
	s.WriteString("hi")
	s.clearCurrentRow()
	s.moveTo(Coord{Column: 4, Row: 2})
	s.showCursor()

	want := "\033[?25l\033[1;1Hhi\033[K\033[3;5H\033[?25h"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScreenBufferColors(t *testing.T) {
	var s screenBuffer
	s.foreground(Color{R: 255, G: 255, B: 255})
	s.background(Color{R: 1, G: 2, B: 3})
	s.revertAll()

	want := "\033[38;2;255;255;255m\033[48;2;1;2;3m\033[m"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScreenBufferSubstring(t *testing.T) {
	tests := []struct {
		start, length int
		want          string
	}{
		{0, 5, "hello"},
		{1, 3, "ell"},
		{3, 10, "lo"},
		{-2, 2, "he"},
		{9, 2, ""},
		{2, -1, "llo"},
	}
	for _, tt := range tests {
		var s screenBuffer
		s.substring("hello", tt.start, tt.length)
		if got := s.String(); got != tt.want {
			t.Errorf("substring(%d, %d) = %q, want %q", tt.start, tt.length, got, tt.want)
		}
	}
}

func TestScreenBufferClearScreen(t *testing.T) {
	var s screenBuffer
	s.clearScreen()
	if s.String() != "\033[2J" {
		t.Errorf("got %q", s.String())
	}
}
