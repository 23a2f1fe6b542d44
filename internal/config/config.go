package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/InAnYan/EditorAttempt1/internal/terminal"
)

// Settings holds user-wide editor preferences loaded from
// ~/.editor/settings.json. Keys missing from the file keep their defaults.
type Settings struct {
	TabStop         int    `json:"tab_stop"`
	QuitTimes       int    `json:"quit_times"`       // Ctrl-Q presses to leave with unsaved changes
	MessageLifetime int    `json:"message_lifetime"` // frames
	ReadTimeoutMS   int    `json:"read_timeout_ms"`
	Foreground      string `json:"foreground"` // hex, e.g. "#ffffff"
	Background      string `json:"background"`
	LogFile         string `json:"log_file,omitempty"` // debug log; empty disables
}

// EnvPath names the environment variable that overrides the settings path.
const EnvPath = "EDITOR_SETTINGS"

// settingsFile is the path relative to the user's home directory.
const settingsFile = ".editor/settings.json"

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{
		TabStop:         4,
		QuitTimes:       3,
		MessageLifetime: 1,
		ReadTimeoutMS:   100,
		Foreground:      "#ffffff",
		Background:      "#000000",
	}
}

// Path returns where settings are read from: $EDITOR_SETTINGS if set,
// otherwise ~/.editor/settings.json. It returns "" when neither is known.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, settingsFile)
}

// Load reads and validates the settings at Path().
func Load() (*Settings, error) {
	path := Path()
	if path == "" {
		return Defaults(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the settings at path. A missing file yields
// the defaults (not an error).
func LoadFrom(path string) (*Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// SaveTo writes s to path, creating the directory if needed.
func SaveTo(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Validate reports the first setting that is out of range.
func (s *Settings) Validate() error {
	switch {
	case s.TabStop <= 0:
		return fmt.Errorf("tab_stop must be greater than 0, got %d", s.TabStop)
	case s.QuitTimes < 0:
		return fmt.Errorf("quit_times must not be negative, got %d", s.QuitTimes)
	case s.MessageLifetime < 0:
		return fmt.Errorf("message_lifetime must not be negative, got %d", s.MessageLifetime)
	case s.ReadTimeoutMS < 1:
		return fmt.Errorf("read_timeout_ms must be at least 1, got %d", s.ReadTimeoutMS)
	}
	if _, err := ParseColor(s.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := ParseColor(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// Colors returns the parsed foreground and background colors.
func (s *Settings) Colors() (fg, bg terminal.Color, err error) {
	if fg, err = ParseColor(s.Foreground); err != nil {
		return fg, bg, fmt.Errorf("foreground: %w", err)
	}
	if bg, err = ParseColor(s.Background); err != nil {
		return fg, bg, fmt.Errorf("background: %w", err)
	}
	return fg, bg, nil
}

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(hex string) (terminal.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return terminal.Color{}, fmt.Errorf("invalid color %q", hex)
	}
	r, g, b := c.RGB255()
	return terminal.Color{R: r, G: g, B: b}, nil
}
