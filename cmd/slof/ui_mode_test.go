package main

import "testing"

func TestReadUIMode(t *testing.T) {
	tests := map[string]uiMode{
		"":     uiModeAuto,
		"auto": uiModeAuto,
		" ON ": uiModeOn,
		"off":  uiModeOff,
	}
	for in, want := range tests {
		got, err := readUIMode(in)
		if err != nil {
			t.Fatalf("readUIMode(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("readUIMode(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestShouldUseTUIExplicit(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Error("on must enable the TUI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Error("off must disable the TUI")
	}
}

func TestUIModeFlagValue(t *testing.T) {
	m := uiModeAuto
	if err := m.Set("Off"); err != nil {
		t.Fatal(err)
	}
	if m.String() != "off" {
		t.Errorf("expected off, got %q", m.String())
	}
	if err := m.Set("never"); err == nil {
		t.Error("expected error")
	}
	if m != uiModeOff {
		t.Error("failed Set must keep the previous value")
	}
}
