package terminal

import (
	"fmt"

	cerr "github.com/InAnYan/EditorAttempt1/internal/errors"
)

// parseCursorReport parses a cursor position report "ESC [ row ; col"
// (the terminating 'R' already stripped). Positions are one-based, so the
// report taken at the bottom-right corner equals the window size.
func parseCursorReport(reply []byte) (Coord, error) {
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return Coord{}, cerr.Implementation("get the size of the terminal", fmt.Errorf("malformed cursor report %q", reply))
	}
	var row, col int
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &row, &col); err != nil {
		return Coord{}, cerr.Implementation("get the size of the terminal", fmt.Errorf("parsing cursor report %q: %w", reply, err))
	}
	return Coord{Column: col, Row: row}, nil
}
