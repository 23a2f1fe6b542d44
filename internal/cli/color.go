package cli

import (
	"fmt"
	"os"
)

// ANSI reset code, shared across the package.
const reset = "\033[0m"

// ANSI colors for stderr diagnostics.
const (
	colorRed    = "\033[38;2;196;48;48m"  // #C43030
	colorYellow = "\033[38;2;212;148;10m" // #D4940A
	colorCyan   = "\033[36m"
)

// ColorEnabled controls whether ANSI color codes are emitted.
// It defaults to true if stderr is a terminal and NO_COLOR is not set.
var ColorEnabled = initColorEnabled()

func initColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	stat, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// Error formats a message with a red cross prefix.
func Error(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s✗ %s%s", colorRed, msg, reset)
	}
	return "✗ " + msg
}

// Warn formats a message with a yellow warning prefix.
func Warn(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s⚠ %s%s", colorYellow, msg, reset)
	}
	return "⚠ " + msg
}

// Info formats a message in cyan (no prefix).
func Info(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s%s%s", colorCyan, msg, reset)
	}
	return msg
}
