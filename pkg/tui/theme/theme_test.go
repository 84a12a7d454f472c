package theme

import (
	"strings"
	"testing"
)

func TestForModeSelectsPalette(t *testing.T) {
	if got := ForMode(ModeLight).Mode; got != ModeLight {
		t.Fatalf("expected light, got %s", got)
	}
	if got := ForMode(ModeDark).Mode; got != ModeDark {
		t.Fatalf("expected dark, got %s", got)
	}
	if got := ForMode("solarized").Mode; got != ModeDark {
		t.Fatalf("unknown modes must fall back to dark, got %s", got)
	}
	if got := Default().Mode; got != ModeDark {
		t.Fatalf("default must be dark, got %s", got)
	}
}

func TestBlendHexMixesColors(t *testing.T) {
	got := blendHex("#000000", "#ffffff", 0.5)
	if !strings.HasPrefix(got, "#") {
		t.Fatalf("expected a hex color, got %q", got)
	}
	if got == "#000000" || got == "#ffffff" {
		t.Fatalf("expected a mix of the endpoints, got %q", got)
	}

	// Unparseable input passes through untouched.
	if got := blendHex("nope", "#ffffff", 0.5); got != "nope" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestBlendYieldsUsableColor(t *testing.T) {
	c := blend("#ff5555", "#2a2a33", 0.4)
	if c == nil {
		t.Fatal("blend returned nil")
	}
	r, g, b, _ := c.RGBA()
	if r == 0 && g == 0 && b == 0 {
		t.Fatal("blend of two non-black colors must not be black")
	}
}
