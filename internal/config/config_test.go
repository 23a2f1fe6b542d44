package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/InAnYan/EditorAttempt1/internal/terminal"
)

func writeSettings(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if *s != *Defaults() {
		t.Fatalf("expected defaults, got: %+v", s)
	}
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	if s.TabStop != 4 {
		t.Errorf("tab_stop = %d, want 4", s.TabStop)
	}
	if s.QuitTimes != 3 {
		t.Errorf("quit_times = %d, want 3", s.QuitTimes)
	}
	if s.MessageLifetime != 1 {
		t.Errorf("message_lifetime = %d, want 1", s.MessageLifetime)
	}
	if s.ReadTimeoutMS != 100 {
		t.Errorf("read_timeout_ms = %d, want 100", s.ReadTimeoutMS)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadValidSettings(t *testing.T) {
	path := writeSettings(t, `{
  "tab_stop": 8,
  "quit_times": 1,
  "read_timeout_ms": 300,
  "foreground": "#d0d0d0",
  "log_file": "/tmp/editor.log"
}`)

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TabStop != 8 {
		t.Errorf("tab_stop = %d, want 8", s.TabStop)
	}
	if s.QuitTimes != 1 {
		t.Errorf("quit_times = %d, want 1", s.QuitTimes)
	}
	if s.ReadTimeoutMS != 300 {
		t.Errorf("read_timeout_ms = %d, want 300", s.ReadTimeoutMS)
	}
	if s.LogFile != "/tmp/editor.log" {
		t.Errorf("log_file = %q, want %q", s.LogFile, "/tmp/editor.log")
	}
	// Keys absent from the file keep their defaults.
	if s.MessageLifetime != 1 {
		t.Errorf("message_lifetime = %d, want 1", s.MessageLifetime)
	}
	if s.Background != "#000000" {
		t.Errorf("background = %q, want %q", s.Background, "#000000")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeSettings(t, "{bad json")
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"zero tab stop", `{"tab_stop": 0}`, "tab_stop"},
		{"negative tab stop", `{"tab_stop": -2}`, "tab_stop"},
		{"negative quit times", `{"quit_times": -1}`, "quit_times"},
		{"negative lifetime", `{"message_lifetime": -1}`, "message_lifetime"},
		{"negative timeout", `{"read_timeout_ms": -100}`, "read_timeout_ms"},
		{"zero timeout", `{"read_timeout_ms": 0}`, "read_timeout_ms"},
		{"bad foreground", `{"foreground": "white"}`, "foreground"},
		{"bad background", `{"background": "#12"}`, "background"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeSettings(t, tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestPathFromEnv(t *testing.T) {
	path := writeSettings(t, `{"tab_stop": 2}`)
	t.Setenv(EnvPath, path)

	if Path() != path {
		t.Errorf("Path() = %q, want %q", Path(), path)
	}
	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if s.TabStop != 2 {
		t.Errorf("tab_stop = %d, want 2", s.TabStop)
	}
}

func TestPathDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvPath, "")
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".editor", "settings.json")
	if Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	s := Defaults()
	s.TabStop = 2
	s.Foreground = "#abcdef"

	if err := SaveTo(path, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *s {
		t.Errorf("loaded = %+v, want %+v", loaded, s)
	}

	data, _ := os.ReadFile(path)
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["log_file"]; ok {
		t.Error("empty log_file should be omitted")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want terminal.Color
	}{
		{"#000000", terminal.Color{}},
		{"#ffffff", terminal.Color{R: 255, G: 255, B: 255}},
		{"#102030", terminal.Color{R: 0x10, G: 0x20, B: 0x30}},
		{"#fff", terminal.Color{R: 255, G: 255, B: 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "red", "#zzzzzz", "123456"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestColors(t *testing.T) {
	s := Defaults()
	fg, bg, err := s.Colors()
	if err != nil {
		t.Fatal(err)
	}
	if fg != (terminal.Color{R: 255, G: 255, B: 255}) || bg != (terminal.Color{}) {
		t.Errorf("colors = %+v / %+v", fg, bg)
	}
}
