// Package terminal drives a character terminal: it toggles raw-mode
// features, measures the window, decodes key presses (including escape
// sequences) and buffers screen updates until an explicit Flush.
package terminal

import "fmt"

// Coord is a zero-based (column, row) pair with the origin at the top left.
type Coord struct {
	Column int
	Row    int
}

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Inverted returns the complementary color.
func (c Color) Inverted() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Feature is one of the terminal line-discipline switches that make up
// raw mode.
type Feature int

const (
	FeatureEcho                Feature = iota // show typed characters
	FeatureCanonicalMode                      // deliver input only after Enter
	FeatureSignals                            // Ctrl-C / Ctrl-Z generate signals
	FeatureSoftwareFlowControl                // Ctrl-S / Ctrl-Q pause output
	FeatureLiteralSend                        // Ctrl-V sends the next key literally
	FeatureCRNLTransform                      // CR on input is read as NL
	FeatureOutputProcessing                   // NL on output becomes CRNL
)

var featureNames = [...]string{
	FeatureEcho:                "echo",
	FeatureCanonicalMode:       "canonical mode",
	FeatureSignals:             "signals",
	FeatureSoftwareFlowControl: "software flow control",
	FeatureLiteralSend:         "literal send",
	FeatureCRNLTransform:       "CR to NL transform",
	FeatureOutputProcessing:    "output processing",
}

func (f Feature) String() string {
	if f >= 0 && int(f) < len(featureNames) {
		return featureNames[f]
	}
	return fmt.Sprintf("feature(%d)", int(f))
}

// RawModeFeatures is the bundle disabled on entry to raw mode and
// re-enabled on exit.
var RawModeFeatures = []Feature{
	FeatureEcho,
	FeatureCanonicalMode,
	FeatureSignals,
	FeatureSoftwareFlowControl,
	FeatureLiteralSend,
	FeatureCRNLTransform,
	FeatureOutputProcessing,
}

// Special key codes. Printable and control keys use their byte value.
const (
	KeyEscape    rune = 0x1b
	KeyBackspace rune = 0x7f
)

const (
	KeyArrowLeft rune = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var specialKeyNames = map[rune]string{
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
}

// Key is one decoded key press. For control keys Code holds the base letter
// ('q' for Ctrl-Q) and Ctrl is set.
type Key struct {
	Code rune
	Ctrl bool
	Alt  bool
}

// Char returns the plain key for c.
func Char(c rune) Key { return Key{Code: c} }

// CtrlKey returns the Ctrl-modified key for letter c.
func CtrlKey(c rune) Key { return Key{Code: c, Ctrl: true} }

// IsCtrl reports whether k is Ctrl plus the given letter.
func (k Key) IsCtrl(c rune) bool { return k.Ctrl && !k.Alt && k.Code == c }

// String returns a readable name such as "Ctrl-X", "PageUp" or "a".
func (k Key) String() string {
	name, ok := specialKeyNames[k.Code]
	if !ok {
		name = string(k.Code)
	}
	if k.Ctrl && !ok {
		name = string(toUpperASCII(k.Code))
	}
	prefix := ""
	if k.Ctrl {
		prefix += "Ctrl-"
	}
	if k.Alt {
		prefix += "Alt-"
	}
	return prefix + name
}

func toUpperASCII(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Driver is the capability set the editor needs from a terminal.
//
// The drawing calls append to an output buffer; nothing is guaranteed to
// reach the terminal before Flush. Every error returned is an
// Implementation error from internal/errors and should be treated as fatal.
// A Driver is not safe for concurrent use.
type Driver interface {
	GetSize() (Coord, error)

	EnableFeature(f Feature) error
	DisableFeature(f Feature) error

	// SetReadTimeout sets how long a single read waits for input, rounded to
	// the granularity the implementation supports.
	SetReadTimeout(ms int) error

	// WaitAndReadKey blocks until one key press has been decoded.
	WaitAndReadKey() (Key, error)

	ClearScreen()
	ClearCurrentRow()
	SetCursorPosition(c Coord)
	HideCursor()
	ShowCursor()
	WriteCharacter(ch byte)
	WriteString(s string)
	WriteSubstring(s string, start, length int)
	SetForegroundColor(c Color)
	SetBackgroundColor(c Color)
	RevertAllAttributes()

	Flush() error
}
