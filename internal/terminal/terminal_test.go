package terminal

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Char('a'), "a"},
		{CtrlKey('x'), "Ctrl-X"},
		{Char(KeyPageUp), "PageUp"},
		{Char(KeyEscape), "Escape"},
		{Key{Code: 'f', Alt: true}, "Alt-f"},
		{Key{Code: KeyDelete, Ctrl: true}, "Ctrl-Delete"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyIsCtrl(t *testing.T) {
	if !CtrlKey('q').IsCtrl('q') {
		t.Error("expected Ctrl-Q")
	}
	if Char('q').IsCtrl('q') {
		t.Error("plain q is not Ctrl-Q")
	}
	if (Key{Code: 'q', Ctrl: true, Alt: true}).IsCtrl('q') {
		t.Error("Ctrl-Alt-Q is not Ctrl-Q")
	}
}

func TestColorInverted(t *testing.T) {
	c := Color{R: 0, G: 100, B: 255}
	got := c.Inverted()
	want := Color{R: 255, G: 155, B: 0}
	if got != want {
		t.Errorf("Inverted() = %+v, want %+v", got, want)
	}
	if got.Inverted() != c {
		t.Error("double inversion should restore the color")
	}
}

func TestFeatureString(t *testing.T) {
	if FeatureEcho.String() != "echo" {
		t.Errorf("got %q", FeatureEcho.String())
	}
	if Feature(42).String() != "feature(42)" {
		t.Errorf("got %q", Feature(42).String())
	}
	if len(RawModeFeatures) != 7 {
		t.Errorf("raw mode bundle has %d features, want 7", len(RawModeFeatures))
	}
}

func TestDeciseconds(t *testing.T) {
	tests := []struct {
		ms   int
		want uint8
	}{
		{-5, 1},
		{0, 1},
		{40, 1},
		{50, 1},
		{100, 1},
		{149, 1},
		{150, 2},
		{1000, 10},
		{100000, 255},
	}
	for _, tt := range tests {
		if got := deciseconds(tt.ms); got != tt.want {
			t.Errorf("deciseconds(%d) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}
