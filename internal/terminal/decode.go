package terminal

import "strings"

// byteSource yields raw input bytes. ok is false when a read timed out
// without input.
type byteSource interface {
	readByte() (b byte, ok bool, err error)
}

// maxEscapeLookahead bounds how many bytes after ESC are examined.
const maxEscapeLookahead = 3

// maxControlSequence bounds how many bytes of an unknown "ESC [ <digit>"
// sequence are discarded while looking for its final byte.
const maxControlSequence = 16

// escapeSequences maps the bytes following ESC to a key code.
var escapeSequences = map[string]rune{
	"[A":  KeyArrowUp,
	"[B":  KeyArrowDown,
	"[C":  KeyArrowRight,
	"[D":  KeyArrowLeft,
	"[H":  KeyHome,
	"[F":  KeyEnd,
	"OA":  KeyArrowUp,
	"OB":  KeyArrowDown,
	"OC":  KeyArrowRight,
	"OD":  KeyArrowLeft,
	"OH":  KeyHome,
	"OF":  KeyEnd,
	"[1~": KeyHome,
	"[7~": KeyHome,
	"[3~": KeyDelete,
	"[4~": KeyEnd,
	"[8~": KeyEnd,
	"[5~": KeyPageUp,
	"[6~": KeyPageDown,
}

func isEscapePrefix(seq string) bool {
	for known := range escapeSequences {
		if strings.HasPrefix(known, seq) {
			return true
		}
	}
	return false
}

// decodeKey blocks until a byte arrives and decodes one key from src.
func decodeKey(src byteSource) (Key, error) {
	var b byte
	for {
		c, ok, err := src.readByte()
		if err != nil {
			return Key{}, err
		}
		if ok {
			b = c
			break
		}
	}

	if b == 0x1b {
		return decodeEscape(src), nil
	}
	return keyFromByte(b), nil
}

// decodeEscape reads the lookahead after ESC. Anything that is not a known
// sequence, including a timeout or read failure, is a plain Escape.
func decodeEscape(src byteSource) Key {
	seq := make([]byte, 0, maxEscapeLookahead)
	for len(seq) < maxEscapeLookahead {
		c, ok, err := src.readByte()
		if err != nil || !ok {
			break
		}
		seq = append(seq, c)

		if code, found := escapeSequences[string(seq)]; found {
			return Key{Code: code}
		}
		if !isEscapePrefix(string(seq)) {
			break
		}
	}
	if isUnfinishedControlSequence(seq) {
		discardControlSequence(src, len(seq))
	}
	return Char(KeyEscape)
}

// isUnfinishedControlSequence reports whether seq opens a numeric control
// sequence ("[" then a digit) whose final byte has not been read yet.
func isUnfinishedControlSequence(seq []byte) bool {
	if len(seq) < 2 || seq[0] != '[' || seq[1] < '0' || seq[1] > '9' {
		return false
	}
	return !isFinalByte(seq[len(seq)-1])
}

// isFinalByte reports whether b terminates a control sequence ('~' included).
func isFinalByte(b byte) bool { return b >= 0x40 && b <= 0x7e }

// discardControlSequence reads up to and including the final byte so that
// none of an unrecognized sequence is decoded as typed keys.
func discardControlSequence(src byteSource, read int) {
	for ; read < maxControlSequence; read++ {
		c, ok, err := src.readByte()
		if err != nil || !ok || isFinalByte(c) {
			return
		}
	}
}

// keyFromByte reverses the terminal's control-key masking (letter & 0x1f).
func keyFromByte(b byte) Key {
	switch {
	case b == 0x7f:
		return Char(KeyBackspace)
	case b < 0x20:
		return CtrlKey(rune(b) + 0x60)
	}
	return Char(rune(b))
}
