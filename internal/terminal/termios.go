//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// applyFeature switches f on or off in t and reports whether t changed.
func applyFeature(t *unix.Termios, f Feature, on bool) (bool, error) {
	switch f {
	case FeatureEcho:
		return setFlag(&t.Lflag, unix.ECHO, on), nil
	case FeatureCanonicalMode:
		return setFlag(&t.Lflag, unix.ICANON, on), nil
	case FeatureSignals:
		return setFlag(&t.Lflag, unix.ISIG, on), nil
	case FeatureSoftwareFlowControl:
		return setFlag(&t.Iflag, unix.IXON, on), nil
	case FeatureLiteralSend:
		return setFlag(&t.Lflag, unix.IEXTEN, on), nil
	case FeatureCRNLTransform:
		return setFlag(&t.Iflag, unix.ICRNL, on), nil
	case FeatureOutputProcessing:
		return setFlag(&t.Oflag, unix.OPOST, on), nil
	}
	return false, fmt.Errorf("unknown terminal feature %v", f)
}

func setFlag[T ~uint32 | ~uint64](field *T, mask T, on bool) bool {
	old := *field
	if on {
		*field |= mask
	} else {
		*field &^= mask
	}
	return *field != old
}

// setReadTimeout makes reads return after the given deciseconds even when
// no byte arrived.
func setReadTimeout(t *unix.Termios, deci uint8) {
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = deci
}

// isHangup reports whether poll revents mark the descriptor as closed.
func isHangup(revents int16) bool {
	return revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0
}
